package repository

import "time"

type CreateTaskOptions struct {
	UserID           string
	Title            string
	Category         string
	Content          string
	Deadline         time.Time
	Priority         int
	EstimatedMinutes int
}

// GetOneTaskOptions filters by AND of the non-empty fields.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions filters a user's tasks. Completed == nil means all;
// Limit <= 0 disables pagination.
type ListTasksOptions struct {
	UserID    string
	Completed *bool
	Limit     int
	Offset    int
}

// UpdateTaskOptions carries the full post-merge row. The use case reads
// the current row, applies partial changes, and writes it back whole.
type UpdateTaskOptions struct {
	ID               string
	Title            string
	Category         string
	Content          string
	Deadline         time.Time
	Priority         int
	EstimatedMinutes int
	ProgressMinutes  int
	ProgressSessions int
	Completed        bool
}
