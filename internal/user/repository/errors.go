package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert user record")
	ErrFailedToGet    = errors.New("failed to get user record")
	ErrFailedToList   = errors.New("failed to list user records")
	ErrFailedToUpdate = errors.New("failed to update user record")
	ErrFailedToDelete = errors.New("failed to delete user record")
)
