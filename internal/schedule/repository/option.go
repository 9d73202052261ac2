package repository

import (
	"time"

	"github.com/KN-gho/timebudget/pkg/pressure"
)

type CreateScheduleOptions struct {
	UserID     string
	Date       time.Time
	StartTime  pressure.Clock
	EventName  string
	Location   string
	Outdoor    bool
	Importance int
	Changeable bool
}

// GetOneScheduleOptions filters by AND of the non-empty fields.
type GetOneScheduleOptions struct {
	ID     string
	UserID string
}
