package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateName    = errors.New("user name already exists")
	ErrSettingsNotFound = errors.New("user settings not found")
	ErrInvalidClock     = errors.New("invalid wake/sleep time")
)
