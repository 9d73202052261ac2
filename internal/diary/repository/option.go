package repository

import "time"

type CreateEntryOptions struct {
	UserID  string
	Date    time.Time
	Content string
}

type UpdateEntryOptions struct {
	UserID  string
	Date    time.Time
	Content string
}
