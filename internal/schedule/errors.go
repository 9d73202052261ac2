package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrNoRegion         = errors.New("user has no region configured")
	ErrForecast         = errors.New("failed to fetch weather forecast")
	ErrAdvice           = errors.New("failed to generate advice")
	ErrAIUnavailable    = errors.New("ai client not configured")
	ErrInvalidTime      = errors.New("invalid start time")
)
