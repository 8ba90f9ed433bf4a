package settings

import (
	"context"

	"taskdeck/internal/model"
)

// UseCase exposes the persisted reminder lead-time setting in minutes.
type UseCase interface {
	// GetReminderLead returns the effective lead time.
	GetReminderLead(ctx context.Context) (int, error)

	// SetReminderLead persists a new lead time (non-positive values
	// normalize to the default) and reschedules all pending reminders
	// against it. Returns the effective value.
	SetReminderLead(ctx context.Context, minutes int) (int, error)
}

// Scheduler is the reminder surface the settings domain drives when the
// lead time changes.
type Scheduler interface {
	SetLeadMinutes(minutes int)
	Reconcile(tasks []model.Task)
}

// TaskSource supplies the current collection for rescheduling.
type TaskSource interface {
	List(ctx context.Context) ([]model.Task, error)
}
