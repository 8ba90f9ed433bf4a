package usecase

import (
	"context"

	"taskdeck/internal/model"
	"taskdeck/internal/query"
	"taskdeck/internal/task"
)

// List returns a copy of the full collection in insertion order.
func (uc *implUseCase) List(ctx context.Context) ([]model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked(), nil
}

// Query returns the ordered view for the given filter, category and search.
func (uc *implUseCase) Query(ctx context.Context, input task.QueryInput) ([]model.Task, error) {
	uc.mu.Lock()
	tasks := uc.snapshotLocked()
	now := uc.clock()
	uc.mu.Unlock()

	return query.Apply(tasks, query.Options{
		Filter:   input.Filter,
		Category: input.Category,
		Search:   input.Search,
	}, now), nil
}

// Upcoming returns the date-grouped upcoming view.
func (uc *implUseCase) Upcoming(ctx context.Context, input task.QueryInput) ([]query.Group, error) {
	uc.mu.Lock()
	tasks := uc.snapshotLocked()
	now := uc.clock()
	uc.mu.Unlock()

	return query.GroupUpcoming(tasks, query.Options{
		Category: input.Category,
		Search:   input.Search,
	}, now), nil
}
