package usecase

import (
	"context"

	"taskdeck/internal/task"
)

// SoftDelete marks each existing id as deleted and cancels its reminder.
// Unknown ids are silently skipped; completion state is left alone.
func (uc *implUseCase) SoftDelete(ctx context.Context, ids []string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.clock()
	for _, id := range ids {
		i := uc.indexOf(id)
		if i < 0 {
			continue
		}
		t := uc.tasks[i]
		if !t.Deleted {
			deletedAt := now
			t.Deleted = true
			t.DeletedAt = &deletedAt
			t.UpdatedAt = now
			uc.tasks[i] = t

			if err := uc.repo.UpdateTask(ctx, t); err != nil {
				uc.l.Errorf(ctx, "uc.SoftDelete UpdateTask %s: %v", t.ID, err)
			}
		}
		uc.sched.Cancel(id)
	}
	return nil
}

// Restore clears the soft-delete state of a deleted task and, when the
// task is incomplete, re-evaluates reminder scheduling. Restoring a task
// that was never deleted is a no-op success.
func (uc *implUseCase) Restore(ctx context.Context, id string) (task.TaskOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}

	t := uc.tasks[i]
	if !t.Deleted {
		return task.TaskOutput{Task: t}, nil
	}

	t.Deleted = false
	t.DeletedAt = nil
	t.UpdatedAt = uc.clock()
	uc.tasks[i] = t

	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.Restore UpdateTask %s: %v", t.ID, err)
	}

	if !t.Completed {
		uc.sched.Schedule(t)
	}

	return task.TaskOutput{Task: t}, nil
}

// PermanentlyDelete removes the task from the collection entirely. The
// reminder cancel is defensive; soft delete already removed any pending
// reminder.
func (uc *implUseCase) PermanentlyDelete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return nil
	}

	uc.tasks = append(uc.tasks[:i], uc.tasks[i+1:]...)

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.PermanentlyDelete DeleteTask %s: %v", id, err)
	}
	uc.sched.Cancel(id)
	return nil
}

// ToggleCompletion flips the completion flag, keeping CompletedAt in step.
// Completing cancels the reminder; un-completing re-evaluates scheduling.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, id string) (task.TaskOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}

	now := uc.clock()
	t := uc.tasks[i]
	if t.Completed {
		t.Completed = false
		t.CompletedAt = nil
	} else {
		completedAt := now
		t.Completed = true
		t.CompletedAt = &completedAt
	}
	t.UpdatedAt = now
	uc.tasks[i] = t

	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.ToggleCompletion UpdateTask %s: %v", t.ID, err)
	}

	if t.Completed {
		uc.sched.Cancel(t.ID)
	} else {
		uc.sched.Schedule(t)
	}

	return task.TaskOutput{Task: t}, nil
}
