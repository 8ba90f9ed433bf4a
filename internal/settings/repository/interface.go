package repository

import "context"

// Repository persists service settings as key-value pairs.
type Repository interface {
	// GetInt returns the stored value for the key; ok=false when unset.
	GetInt(ctx context.Context, key string) (value int, ok bool, err error)
	// SetInt stores the value under the key, replacing any prior value.
	SetInt(ctx context.Context, key string, value int) error
}
