package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert schedule record")
	ErrFailedToGet    = errors.New("failed to get schedule record")
	ErrFailedToList   = errors.New("failed to list schedule records")
	ErrFailedToDelete = errors.New("failed to delete schedule record")
)
