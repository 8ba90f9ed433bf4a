package repository

import "errors"

var (
	ErrFailedToLoad   = errors.New("failed to load categories")
	ErrFailedToAppend = errors.New("failed to append category")
)
