package repository

import "github.com/KN-gho/timebudget/pkg/pressure"

type CreateUserOptions struct {
	Name         string
	Email        string
	RegionID     string
	RegionName   string
	WorkHours    float64
	CommuteHours float64
	SleepHours   float64
}

// GetOneUserOptions filters by AND of the non-empty fields.
type GetOneUserOptions struct {
	ID   string
	Name string
}

type UpdateUserOptions struct {
	ID           string
	Email        string
	RegionID     string
	RegionName   string
	WorkHours    float64
	CommuteHours float64
	SleepHours   float64
}

type UpsertSettingsOptions struct {
	UserID       string
	WeekdayWake  pressure.Clock
	WeekdaySleep pressure.Clock
	WeekendWake  pressure.Clock
	WeekendSleep pressure.Clock
	WorkStart    pressure.Clock
	WorkEnd      pressure.Clock
}
