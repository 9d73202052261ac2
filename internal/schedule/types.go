package schedule

import (
	"time"

	"github.com/KN-gho/timebudget/internal/model"
	"github.com/KN-gho/timebudget/pkg/pressure"
)

// --- UseCase Inputs ---

type AddInput struct {
	UserID     string
	Date       time.Time
	StartTime  pressure.Clock
	EventName  string
	Location   string
	Outdoor    bool
	Importance int
	Changeable bool
}

// --- UseCase Outputs ---

type AddOutput struct {
	Schedule model.Schedule
}

type ListOutput struct {
	Schedules []model.Schedule
}

// DayForecast is one day's forecast summary for the user's region.
type DayForecast struct {
	Date        string         `json:"date"`
	DateLabel   string         `json:"date_label"`
	Weather     string         `json:"weather"`
	Detail      string         `json:"detail"`
	Temperature string         `json:"temperature"`
	RainAverage float64        `json:"rain_average"`
	RainByTime  map[string]int `json:"rain_by_time"`
	Rainy       bool           `json:"rainy"`
	ImageURL    string         `json:"image_url"`
}

type ForecastOutput struct {
	City      string
	Title     string
	Forecasts []DayForecast
}

type AdviceOutput struct {
	Advice    string
	Forecasts []DayForecast
}
