package diary

import "errors"

var (
	ErrEntryNotFound = errors.New("diary entry not found")
	ErrEntryExists   = errors.New("diary entry already exists for this date")
	ErrUserNotFound  = errors.New("user not found")
	ErrEmptyContent  = errors.New("diary content is empty")
)
