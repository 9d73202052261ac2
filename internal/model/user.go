package model

import (
	"time"

	"github.com/KN-gho/timebudget/pkg/pressure"
)

// User is a registered profile. RegionID is the JMA city code used for
// weather lookups.
type User struct {
	ID           string
	Name         string
	Email        string
	RegionID     string
	RegionName   string
	WorkHours    float64
	CommuteHours float64
	SleepHours   float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSettings is a user's daily rhythm. Weekday wake/sleep feed the
// pressure calculator.
type UserSettings struct {
	UserID       string
	WeekdayWake  pressure.Clock
	WeekdaySleep pressure.Clock
	WeekendWake  pressure.Clock
	WeekendSleep pressure.Clock
	WorkStart    pressure.Clock
	WorkEnd      pressure.Clock
	UpdatedAt    time.Time
}

// PressureSchedule converts the weekday window into calculator input.
func (s UserSettings) PressureSchedule() *pressure.Schedule {
	return &pressure.Schedule{Wake: s.WeekdayWake, Sleep: s.WeekdaySleep}
}
