package model

import "time"

// DiaryEntry is a one-line diary entry. A user has at most one entry per date.
type DiaryEntry struct {
	ID        string
	UserID    string
	Date      time.Time // calendar date, midnight
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
