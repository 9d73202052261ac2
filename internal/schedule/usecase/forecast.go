package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/KN-gho/timebudget/internal/model"
	"github.com/KN-gho/timebudget/internal/schedule"
	userRepo "github.com/KN-gho/timebudget/internal/user/repository"
	"github.com/KN-gho/timebudget/pkg/weather"
)

// Forecast returns tomorrow's and the day after's forecast for the
// user's registered region. Today's forecast is skipped since it is no
// longer actionable for planning. Results are cached per city.
func (uc *implUseCase) Forecast(ctx context.Context, userID string) (schedule.ForecastOutput, error) {
	u, err := uc.regionUser(ctx, userID)
	if err != nil {
		return schedule.ForecastOutput{}, err
	}

	forecasts, err := uc.cityForecasts(ctx, u.RegionID)
	if err != nil {
		return schedule.ForecastOutput{}, err
	}

	return schedule.ForecastOutput{
		City:      u.RegionName,
		Title:     u.RegionName,
		Forecasts: forecasts,
	}, nil
}

// cityForecasts fetches and summarizes the upcoming forecasts for a
// city, serving repeats from the LRU cache.
func (uc *implUseCase) cityForecasts(ctx context.Context, cityCode string) ([]schedule.DayForecast, error) {
	if cached, ok := uc.cache.Get(cityCode); ok {
		return cached, nil
	}

	resp, err := uc.weather.CityForecast(ctx, cityCode)
	if err != nil {
		uc.l.Errorf(ctx, "uc.cityForecasts CityForecast: %v", err)
		return nil, schedule.ErrForecast
	}

	var forecasts []schedule.DayForecast
	for i, f := range resp.Forecasts {
		if i == 0 {
			continue // today
		}
		if i > 2 {
			break
		}
		forecasts = append(forecasts, summarizeForecast(f))
	}

	uc.cache.Add(cityCode, forecasts)
	return forecasts, nil
}

// summarizeForecast flattens one day's forecast into the advice-ready shape.
func summarizeForecast(f weather.Forecast) schedule.DayForecast {
	detail := f.Detail.Weather
	if detail == "" {
		detail = f.Telop
	}

	rainByTime := make(map[string]int)
	for period, prob := range f.ChanceOfRain {
		raw := strings.TrimSuffix(prob, "%")
		if raw == "" || raw == "--" {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil {
			rainByTime[period] = n
		}
	}

	return schedule.DayForecast{
		Date:        f.Date,
		DateLabel:   f.DateLabel,
		Weather:     f.Telop,
		Detail:      detail,
		Temperature: f.TemperatureSummary(),
		RainAverage: f.AverageChanceOfRain(),
		RainByTime:  rainByTime,
		Rainy:       f.Rainy(),
		ImageURL:    f.Image.URL,
	}
}

// regionUser loads the user and requires a configured region.
func (uc *implUseCase) regionUser(ctx context.Context, userID string) (model.User, error) {
	u, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.regionUser: %v", err)
		return model.User{}, err
	}
	if u.ID == "" {
		return model.User{}, schedule.ErrUserNotFound
	}
	if u.RegionID == "" {
		return model.User{}, schedule.ErrNoRegion
	}
	return u, nil
}
