package model

import (
	"time"

	"github.com/KN-gho/timebudget/pkg/pressure"
)

// Schedule is a planned event that weather advice can reason about.
type Schedule struct {
	ID         string
	UserID     string
	Date       time.Time // calendar date, midnight
	StartTime  pressure.Clock
	EventName  string
	Location   string
	Outdoor    bool
	Importance int // 1..5
	Changeable bool
	CreatedAt  time.Time
}
