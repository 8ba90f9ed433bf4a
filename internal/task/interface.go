package task

import (
	"context"

	"taskdeck/internal/model"
	"taskdeck/internal/query"
)

// UseCase is the task store: the single owner of the canonical task
// collection and the entry point for every lifecycle operation.
type UseCase interface {
	// Add creates a new task with a fresh id and triggers reminder scheduling.
	Add(ctx context.Context, input AddInput) (TaskOutput, error)

	// Update replaces the stored task matching the input id.
	Update(ctx context.Context, input UpdateInput) (TaskOutput, error)

	// SoftDelete marks each existing id deleted; unknown ids are skipped.
	SoftDelete(ctx context.Context, ids []string) error

	// Restore clears the soft-delete state of a deleted task.
	Restore(ctx context.Context, id string) (TaskOutput, error)

	// PermanentlyDelete removes the task entirely. Irreversible; a missing
	// id is a silent no-op.
	PermanentlyDelete(ctx context.Context, id string) error

	// ToggleCompletion flips the completion flag and its timestamp.
	ToggleCompletion(ctx context.Context, id string) (TaskOutput, error)

	// List returns a copy of the full collection.
	List(ctx context.Context) ([]model.Task, error)

	// Query returns the ordered view for the given filter/category/search.
	Query(ctx context.Context, input QueryInput) ([]model.Task, error)

	// Upcoming returns the date-grouped upcoming view.
	Upcoming(ctx context.Context, input QueryInput) ([]query.Group, error)
}

// Scheduler is the reminder surface the store drives on mutations.
type Scheduler interface {
	// Schedule cancels any pending reminder for the task id and registers a
	// new one when the task state is eligible.
	Schedule(t model.Task)
	// Cancel drops the pending reminder for the id, if any.
	Cancel(id string)
}
