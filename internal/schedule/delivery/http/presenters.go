package http

import (
	"errors"
	"time"

	"github.com/KN-gho/timebudget/internal/model"
	"github.com/KN-gho/timebudget/internal/schedule"
	"github.com/KN-gho/timebudget/pkg/pressure"
	"github.com/KN-gho/timebudget/pkg/response"
)

var errInvalidDate = errors.New("invalid date")

// --- Request DTOs ---

type addReq struct {
	UserID     string `json:"user_id"    binding:"required"`
	Date       string `json:"date"       binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EventName  string `json:"event_name" binding:"required,min=1,max=255"`
	Location   string `json:"location"   binding:"omitempty,max=255"`
	Outdoor    bool   `json:"outdoor"`
	Importance int    `json:"importance" binding:"omitempty,min=1,max=5"`
	Changeable *bool  `json:"changeable"`
}

func (r addReq) validate() error {
	if _, err := time.Parse(response.DateFormat, r.Date); err != nil {
		return errInvalidDate
	}
	if _, err := pressure.ParseClock(r.StartTime); err != nil {
		return schedule.ErrInvalidTime
	}
	return nil
}

func (r addReq) toInput() schedule.AddInput {
	date, _ := time.Parse(response.DateFormat, r.Date)
	start, _ := pressure.ParseClock(r.StartTime)
	importance := r.Importance
	if importance == 0 {
		importance = 3
	}
	changeable := true
	if r.Changeable != nil {
		changeable = *r.Changeable
	}
	return schedule.AddInput{
		UserID:     r.UserID,
		Date:       date,
		StartTime:  start,
		EventName:  r.EventName,
		Location:   r.Location,
		Outdoor:    r.Outdoor,
		Importance: importance,
		Changeable: changeable,
	}
}

// --- Response DTOs ---

type scheduleResp struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EventName  string    `json:"event_name"`
	Location   string    `json:"location"`
	Outdoor    bool      `json:"outdoor"`
	Importance int       `json:"importance"`
	Changeable bool      `json:"changeable"`
	CreatedAt  time.Time `json:"created_at"`
}

func newScheduleResp(s model.Schedule) scheduleResp {
	return scheduleResp{
		ID:         s.ID,
		UserID:     s.UserID,
		Date:       s.Date.Format(response.DateFormat),
		StartTime:  s.StartTime.String(),
		EventName:  s.EventName,
		Location:   s.Location,
		Outdoor:    s.Outdoor,
		Importance: s.Importance,
		Changeable: s.Changeable,
		CreatedAt:  s.CreatedAt,
	}
}

type addResp struct {
	Schedule scheduleResp `json:"schedule"`
}

func (h *handler) newAddResp(out schedule.AddOutput) addResp {
	return addResp{Schedule: newScheduleResp(out.Schedule)}
}

type listResp struct {
	Schedules []scheduleResp `json:"schedules"`
}

func (h *handler) newListResp(out schedule.ListOutput) listResp {
	schedules := make([]scheduleResp, len(out.Schedules))
	for i, s := range out.Schedules {
		schedules[i] = newScheduleResp(s)
	}
	return listResp{Schedules: schedules}
}

type forecastResp struct {
	City      string                 `json:"city"`
	Forecasts []schedule.DayForecast `json:"forecasts"`
}

func (h *handler) newForecastResp(out schedule.ForecastOutput) forecastResp {
	return forecastResp{
		City:      out.City,
		Forecasts: out.Forecasts,
	}
}

type adviceResp struct {
	Advice    string                 `json:"advice"`
	Forecasts []schedule.DayForecast `json:"forecasts"`
}

func (h *handler) newAdviceResp(out schedule.AdviceOutput) adviceResp {
	return adviceResp{
		Advice:    out.Advice,
		Forecasts: out.Forecasts,
	}
}
