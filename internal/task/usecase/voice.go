package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KN-gho/timebudget/internal/task"
	"github.com/KN-gho/timebudget/pkg/openai"
)

// Draft defaults when the extraction leaves a field blank.
const (
	defaultPriority         = 3
	defaultEstimatedMinutes = 60
)

const extractPromptFormat = `次の文章を解析して、以下の形式で出力してください:
タスク名:
メモ・内容:
優先度(1~5):
目安時間(分):
しめきり(YYYY-MM-DD形式。今日が%sで「25日まで」と言われたら、必ず%s-25と出力する。過ぎていれば翌月の日付にする):

入力: %s`

// VoiceIntake transcribes the recording, extracts labeled task fields
// via chat completion, and resolves the spoken deadline. An
// unresolvable deadline falls back to today.
func (uc *implUseCase) VoiceIntake(ctx context.Context, input task.VoiceIntakeInput) (task.VoiceIntakeOutput, error) {
	if uc.ai == nil {
		// The server runs without an API key; voice intake is simply off.
		return task.VoiceIntakeOutput{}, task.ErrAIUnavailable
	}
	if len(input.Audio) == 0 {
		return task.VoiceIntakeOutput{}, task.ErrEmptyAudio
	}
	if err := uc.requireUser(ctx, input.UserID); err != nil {
		return task.VoiceIntakeOutput{}, err
	}

	transcript, err := uc.ai.Transcribe(ctx, &openai.TranscriptionRequest{
		Filename: input.Filename,
		Audio:    input.Audio,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.VoiceIntake Transcribe: %v", err)
		return task.VoiceIntakeOutput{}, task.ErrTranscription
	}

	today := uc.now()
	prompt := fmt.Sprintf(extractPromptFormat,
		today.Format("2006-01-02"), today.Format("2006-01"), transcript.Text)

	completion, err := uc.ai.ChatCompletion(ctx, &openai.ChatRequest{
		Messages: []openai.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.VoiceIntake ChatCompletion: %v", err)
		return task.VoiceIntakeOutput{}, task.ErrExtraction
	}

	draft := uc.parseDraft(completion.Text(), today)
	return task.VoiceIntakeOutput{
		Transcript: transcript.Text,
		Draft:      draft,
	}, nil
}

// parseDraft scans the completion output line by line for the labeled
// fields. Missing or malformed fields keep their defaults.
func (uc *implUseCase) parseDraft(parsed string, today time.Time) task.TaskDraft {
	draft := task.TaskDraft{
		Priority:         defaultPriority,
		EstimatedMinutes: defaultEstimatedMinutes,
		Deadline:         civilDate(today),
	}

	for _, line := range strings.Split(parsed, "\n") {
		switch {
		case strings.HasPrefix(line, "タスク名"):
			draft.Title = labelValue(line)
		case strings.HasPrefix(line, "メモ"):
			draft.Content = labelValue(line)
		case strings.HasPrefix(line, "優先度"):
			if n, err := strconv.Atoi(labelValue(line)); err == nil && n >= 1 && n <= 5 {
				draft.Priority = n
			}
		case strings.HasPrefix(line, "目安時間"):
			raw := strings.TrimSpace(strings.ReplaceAll(labelValue(line), "分", ""))
			if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
				draft.EstimatedMinutes = n
			}
		case strings.HasPrefix(line, "しめきり"):
			if due, ok := uc.resolver.Resolve(labelValue(line), today); ok {
				draft.Deadline = due
			}
		}
	}
	return draft
}

// labelValue returns the trimmed text after the first colon, accepting
// both ASCII and full-width variants since model output mixes them.
func labelValue(line string) string {
	for _, sep := range []string{":", "："} {
		if _, after, found := strings.Cut(line, sep); found {
			return strings.TrimSpace(after)
		}
	}
	return ""
}

// civilDate truncates a timestamp to midnight in its location.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
