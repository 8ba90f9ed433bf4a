package category

import "errors"

var (
	ErrEmptyName = errors.New("category name is empty")
)
