package model

import (
	"time"

	"github.com/KN-gho/timebudget/pkg/pressure"
)

// Task is one registered task with a deadline and time budget.
type Task struct {
	ID               string
	UserID           string
	Title            string
	Category         string
	Content          string
	Deadline         time.Time // calendar date, midnight
	Priority         int       // 1..5
	EstimatedMinutes int
	ProgressMinutes  int
	ProgressSessions int
	Completed        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RemainingMinutes is estimated minus logged progress, floored at zero.
func (t Task) RemainingMinutes() int {
	return t.PressureTask().Remaining()
}

// PressureTask converts the task into calculator input.
func (t Task) PressureTask() pressure.Task {
	return pressure.Task{
		Deadline:         t.Deadline,
		EstimatedMinutes: t.EstimatedMinutes,
		ProgressMinutes:  t.ProgressMinutes,
		Completed:        t.Completed,
	}
}
