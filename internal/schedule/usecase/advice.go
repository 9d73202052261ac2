package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/KN-gho/timebudget/internal/model"
	"github.com/KN-gho/timebudget/internal/schedule"
	repo "github.com/KN-gho/timebudget/internal/schedule/repository"
	"github.com/KN-gho/timebudget/pkg/openai"
)

const (
	adviceMaxTokens   = 500
	adviceTemperature = 0.7
)

// periodNames renders the API's rain period keys for the prompt.
var periodNames = map[string]string{
	"T00_06": "00-06時",
	"T06_12": "06-12時",
	"T12_18": "12-18時",
	"T18_24": "18-24時",
}

// Advice generates schedule advice over tomorrow's and the day after's
// schedules and forecasts, flagging outdoor events on rainy days and
// proposing moves only for changeable ones.
func (uc *implUseCase) Advice(ctx context.Context, userID string) (schedule.AdviceOutput, error) {
	if uc.ai == nil {
		// The server runs without an API key; advice is simply off.
		return schedule.AdviceOutput{}, schedule.ErrAIUnavailable
	}

	u, err := uc.regionUser(ctx, userID)
	if err != nil {
		return schedule.AdviceOutput{}, err
	}

	forecasts, err := uc.cityForecasts(ctx, u.RegionID)
	if err != nil {
		return schedule.AdviceOutput{}, err
	}

	today := uc.now()
	tomorrow := today.AddDate(0, 0, 1)
	dayAfter := today.AddDate(0, 0, 2)

	schedules, err := uc.repo.ListSchedules(ctx, repo.ListSchedulesOptions{
		UserID: userID,
		Date:   tomorrow,
		To:     dayAfter,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Advice ListSchedules: %v", err)
		return schedule.AdviceOutput{}, err
	}

	prompt := advicePrompt(schedules, forecasts)
	completion, err := uc.ai.ChatCompletion(ctx, &openai.ChatRequest{
		Messages:    []openai.Message{{Role: "user", Content: prompt}},
		MaxTokens:   adviceMaxTokens,
		Temperature: adviceTemperature,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Advice ChatCompletion: %v", err)
		return schedule.AdviceOutput{}, schedule.ErrAdvice
	}

	return schedule.AdviceOutput{
		Advice:    completion.Text(),
		Forecasts: forecasts,
	}, nil
}

func advicePrompt(schedules []model.Schedule, forecasts []schedule.DayForecast) string {
	var scheduleText strings.Builder
	for _, s := range schedules {
		outdoor := "屋内"
		if s.Outdoor {
			outdoor = "屋外"
		}
		changeable := "変更不可"
		if s.Changeable {
			changeable = "変更可能"
		}
		fmt.Fprintf(&scheduleText, "- %s %s %s (%s, %s, 重要度%d/5, %s)\n",
			s.Date.Format("2006-01-02"), s.StartTime.String(), s.EventName,
			s.Location, outdoor, s.Importance, changeable)
	}

	var weatherText strings.Builder
	for _, f := range forecasts {
		rainStatus := "晴れ予報"
		if f.Rainy {
			rainStatus = "雨予報"
		}
		fmt.Fprintf(&weatherText, "%s (%s): %s - %s\n", f.Date, f.DateLabel, f.Weather, rainStatus)
		if len(f.RainByTime) > 0 {
			periods := make([]string, 0, len(f.RainByTime))
			for period := range f.RainByTime {
				periods = append(periods, period)
			}
			sort.Strings(periods)

			parts := make([]string, 0, len(periods))
			for _, period := range periods {
				name := periodNames[period]
				if name == "" {
					name = period
				}
				parts = append(parts, fmt.Sprintf("%s:%d%%", name, f.RainByTime[period]))
			}
			fmt.Fprintf(&weatherText, "  時間帯別降水確率: %s\n", strings.Join(parts, ", "))
		}
	}

	return fmt.Sprintf(`以下のスケジュールと天気予報を確認して、雨予報の日の屋外活動について具体的なアドバイスをお願いします。

【天気予報】
%s
【スケジュール】
%s
【アドバイス条件】
- 雨予報（降水確率50%%以上）の日の屋外活動に注目
- 変更可能なスケジュールのみ変更を提案
- 重要度も考慮して優先順位をつける
- 具体的な代替案も提示

アドバイスを簡潔にまとめてください。`, weatherText.String(), scheduleText.String())
}
