package usecase

import (
	"time"

	"taskdeck/internal/model"
)

// indexOf returns the position of the task with the given id, or -1.
// Callers hold uc.mu.
func (uc *implUseCase) indexOf(id string) int {
	for i := range uc.tasks {
		if uc.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshotLocked copies the collection so readers never hold a reference
// into the store's slice. Callers hold uc.mu.
func (uc *implUseCase) snapshotLocked() []model.Task {
	return append([]model.Task(nil), uc.tasks...)
}

// normalizeDueDate truncates a due date to local midnight; the calendar
// day is the task's deadline date, any stray time component is noise.
func normalizeDueDate(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	day := model.StartOfDay(*d)
	return &day
}
