package repository

import (
	"context"
	"time"

	"github.com/KN-gho/timebudget/internal/model"
)

// Repository defines all data access methods for the Schedule entity.
type Repository interface {
	CreateSchedule(ctx context.Context, opt CreateScheduleOptions) (model.Schedule, error)
	// GetOneSchedule returns a zero-value Schedule (ID == "") when not found.
	GetOneSchedule(ctx context.Context, opt GetOneScheduleOptions) (model.Schedule, error)
	ListSchedules(ctx context.Context, opt ListSchedulesOptions) ([]model.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
}

// ListSchedulesOptions filters a user's schedules. Zero-value Date and
// To list everything; Date alone pins one day; Date+To cover a range.
type ListSchedulesOptions struct {
	UserID string
	Date   time.Time
	To     time.Time
}
