package repository

import "errors"

var (
	ErrFailedToGet = errors.New("failed to get setting")
	ErrFailedToSet = errors.New("failed to set setting")
)
