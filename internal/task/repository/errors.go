package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert task record")
	ErrFailedToGet    = errors.New("failed to get task record")
	ErrFailedToList   = errors.New("failed to list task records")
	ErrFailedToUpdate = errors.New("failed to update task record")
	ErrFailedToDelete = errors.New("failed to delete task record")
)
