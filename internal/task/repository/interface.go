package repository

import (
	"context"

	"taskdeck/internal/model"
)

// Repository persists the task collection. The in-memory collection owned
// by the usecase is canonical; these calls mirror it and may fail without
// rolling the in-memory state back.
type Repository interface {
	// LoadAll returns every persisted task in insertion order.
	LoadAll(ctx context.Context) ([]model.Task, error)
	InsertTask(ctx context.Context, t model.Task) error
	UpdateTask(ctx context.Context, t model.Task) error
	DeleteTask(ctx context.Context, id string) error
}
