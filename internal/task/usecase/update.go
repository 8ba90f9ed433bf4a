package usecase

import (
	"context"
	"strings"

	"taskdeck/internal/model"
	"taskdeck/internal/task"
)

// Update replaces the mutable fields of the stored task matching the input
// id. Completion and deletion state survive untouched. The pending reminder
// is cancelled and scheduling re-evaluated against the new state.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.TaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.TaskOutput{}, task.ErrEmptyTitle
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(input.ID)
	if i < 0 {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}

	t := uc.tasks[i]
	t.Title = title
	t.DueDate = normalizeDueDate(input.DueDate)
	t.DueTime = input.DueTime
	t.Priority = input.Priority
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	t.Category = input.Category
	t.Notes = input.Notes
	t.UpdatedAt = uc.clock()
	uc.tasks[i] = t

	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask %s: %v", t.ID, err)
	}

	uc.sched.Cancel(t.ID)
	uc.sched.Schedule(t)

	return task.TaskOutput{Task: t}, nil
}
