package user

import "github.com/KN-gho/timebudget/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Name         string
	Email        string
	RegionID     string
	RegionName   string
	WorkHours    float64
	CommuteHours float64
	SleepHours   float64
}

type UpdateInput struct {
	ID           string
	Email        string
	RegionID     string
	RegionName   string
	WorkHours    float64
	CommuteHours float64
	SleepHours   float64
}

// SaveSettingsInput carries raw clock strings ("HH:MM" or "HH:MM:SS");
// they are validated and converted once at this boundary.
type SaveSettingsInput struct {
	UserID       string
	WeekdayWake  string
	WeekdaySleep string
	WeekendWake  string
	WeekendSleep string
	WorkStart    string
	WorkEnd      string
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	User model.User
}

type DetailOutput struct {
	User model.User
}

type ListOutput struct {
	Users []model.User
	Total int
}

type UpdateOutput struct {
	User model.User
}

type SettingsOutput struct {
	Settings model.UserSettings
}
