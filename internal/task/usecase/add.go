package usecase

import (
	"context"
	"strings"

	"taskdeck/internal/model"
	"taskdeck/internal/task"
)

// Add creates a new task with a fresh id, appends it to the collection,
// persists it and evaluates reminder scheduling.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (task.TaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.TaskOutput{}, task.ErrEmptyTitle
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.clock()
	t := model.Task{
		ID:        uc.newID(),
		Title:     title,
		Priority:  input.Priority,
		Category:  input.Category,
		Notes:     input.Notes,
		DueDate:   normalizeDueDate(input.DueDate),
		DueTime:   input.DueTime,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}

	uc.tasks = append(uc.tasks, t)

	if err := uc.repo.InsertTask(ctx, t); err != nil {
		// In-memory state stays authoritative; durability is best effort.
		uc.l.Errorf(ctx, "uc.Add InsertTask %s: %v", t.ID, err)
	}
	uc.sched.Schedule(t)

	return task.TaskOutput{Task: t}, nil
}
