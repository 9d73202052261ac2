package http

import (
	"time"

	"github.com/KN-gho/timebudget/internal/model"
	"github.com/KN-gho/timebudget/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Name         string  `json:"name"          binding:"required,min=1,max=255"`
	Email        string  `json:"email"         binding:"omitempty,email"`
	RegionID     string  `json:"region_id"     binding:"omitempty,max=16"`
	RegionName   string  `json:"region_name"   binding:"omitempty,max=255"`
	WorkHours    float64 `json:"work_hours"    binding:"omitempty,min=0,max=24"`
	CommuteHours float64 `json:"commute_hours" binding:"omitempty,min=0,max=24"`
	SleepHours   float64 `json:"sleep_hours"   binding:"omitempty,min=0,max=24"`
}

func (r registerReq) validate() error { return nil }

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Name:         r.Name,
		Email:        r.Email,
		RegionID:     r.RegionID,
		RegionName:   r.RegionName,
		WorkHours:    r.WorkHours,
		CommuteHours: r.CommuteHours,
		SleepHours:   r.SleepHours,
	}
}

// ---

type updateReq struct {
	ID           string  `json:"-"` // populated from URI param
	Email        string  `json:"email"         binding:"omitempty,email"`
	RegionID     string  `json:"region_id"     binding:"omitempty,max=16"`
	RegionName   string  `json:"region_name"   binding:"omitempty,max=255"`
	WorkHours    float64 `json:"work_hours"    binding:"omitempty,min=0,max=24"`
	CommuteHours float64 `json:"commute_hours" binding:"omitempty,min=0,max=24"`
	SleepHours   float64 `json:"sleep_hours"   binding:"omitempty,min=0,max=24"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() user.UpdateInput {
	return user.UpdateInput{
		ID:           r.ID,
		Email:        r.Email,
		RegionID:     r.RegionID,
		RegionName:   r.RegionName,
		WorkHours:    r.WorkHours,
		CommuteHours: r.CommuteHours,
		SleepHours:   r.SleepHours,
	}
}

// ---

type saveSettingsReq struct {
	UserID       string `json:"-"` // populated from URI param
	WeekdayWake  string `json:"weekday_wake"  binding:"required"`
	WeekdaySleep string `json:"weekday_sleep" binding:"required"`
	WeekendWake  string `json:"weekend_wake"`
	WeekendSleep string `json:"weekend_sleep"`
	WorkStart    string `json:"work_start"`
	WorkEnd      string `json:"work_end"`
}

func (r saveSettingsReq) validate() error { return nil }

func (r saveSettingsReq) toInput() user.SaveSettingsInput {
	return user.SaveSettingsInput{
		UserID:       r.UserID,
		WeekdayWake:  r.WeekdayWake,
		WeekdaySleep: r.WeekdaySleep,
		WeekendWake:  r.WeekendWake,
		WeekendSleep: r.WeekendSleep,
		WorkStart:    r.WorkStart,
		WorkEnd:      r.WorkEnd,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegionID     string    `json:"region_id"`
	RegionName   string    `json:"region_name"`
	WorkHours    float64   `json:"work_hours"`
	CommuteHours float64   `json:"commute_hours"`
	SleepHours   float64   `json:"sleep_hours"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		RegionID:     u.RegionID,
		RegionName:   u.RegionName,
		WorkHours:    u.WorkHours,
		CommuteHours: u.CommuteHours,
		SleepHours:   u.SleepHours,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type registerResp struct {
	User userResp `json:"user"`
}

func (h *handler) newRegisterResp(out user.RegisterOutput) registerResp {
	return registerResp{User: newUserResp(out.User)}
}

type listResp struct {
	Users []userResp `json:"users"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out user.ListOutput) listResp {
	users := make([]userResp, len(out.Users))
	for i, u := range out.Users {
		users[i] = newUserResp(u)
	}
	return listResp{Users: users, Total: out.Total}
}

type detailResp struct {
	User userResp `json:"user"`
}

func (h *handler) newDetailResp(out user.DetailOutput) detailResp {
	return detailResp{User: newUserResp(out.User)}
}

type updateResp struct {
	User userResp `json:"user"`
}

func (h *handler) newUpdateResp(out user.UpdateOutput) updateResp {
	return updateResp{User: newUserResp(out.User)}
}

type settingsResp struct {
	UserID       string `json:"user_id"`
	WeekdayWake  string `json:"weekday_wake"`
	WeekdaySleep string `json:"weekday_sleep"`
	WeekendWake  string `json:"weekend_wake"`
	WeekendSleep string `json:"weekend_sleep"`
	WorkStart    string `json:"work_start"`
	WorkEnd      string `json:"work_end"`
}

func (h *handler) newSettingsResp(out user.SettingsOutput) settingsResp {
	s := out.Settings
	return settingsResp{
		UserID:       s.UserID,
		WeekdayWake:  s.WeekdayWake.String(),
		WeekdaySleep: s.WeekdaySleep.String(),
		WeekendWake:  s.WeekendWake.String(),
		WeekendSleep: s.WeekendSleep.String(),
		WorkStart:    s.WorkStart.String(),
		WorkEnd:      s.WorkEnd.String(),
	}
}
