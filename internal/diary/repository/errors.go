package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert diary record")
	ErrFailedToGet    = errors.New("failed to get diary record")
	ErrFailedToList   = errors.New("failed to list diary records")
	ErrFailedToUpdate = errors.New("failed to update diary record")
	ErrFailedToDelete = errors.New("failed to delete diary record")
)
