package task

import (
	"time"

	"taskdeck/internal/model"
	"taskdeck/internal/query"
)

// AddInput carries the fields for creating a task. The store fills in the
// id, lifecycle flags and bookkeeping timestamps.
type AddInput struct {
	Title    string
	DueDate  *time.Time
	DueTime  *time.Time
	Priority model.Priority
	Category string
	Notes    string
}

// UpdateInput replaces the mutable fields of an existing task wholesale.
// Completion and deletion state have their own operations and are never
// touched by an update.
type UpdateInput struct {
	ID       string
	Title    string
	DueDate  *time.Time // nil clears the due date
	DueTime  *time.Time // nil clears the due time
	Priority model.Priority
	Category string
	Notes    string
}

// QueryInput selects a task view.
type QueryInput struct {
	Filter   query.Filter
	Category string
	Search   string
}

// TaskOutput wraps a single task result.
type TaskOutput struct {
	Task model.Task
}
