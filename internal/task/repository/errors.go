package repository

import "errors"

var (
	ErrFailedToLoad   = errors.New("failed to load tasks")
	ErrFailedToInsert = errors.New("failed to insert task")
	ErrFailedToUpdate = errors.New("failed to update task")
	ErrFailedToDelete = errors.New("failed to delete task")
)
