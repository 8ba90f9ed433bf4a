package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskdeck/internal/model"
	"taskdeck/internal/task"
	"taskdeck/internal/task/repository"
	"taskdeck/pkg/log"
)

// implUseCase is the private implementation of task.UseCase. It owns the
// canonical in-memory collection; the repository mirrors it and the
// scheduler is driven from every relevant mutation.
type implUseCase struct {
	mu    sync.Mutex
	tasks []model.Task

	repo  repository.Repository
	sched task.Scheduler
	l     log.Logger

	clock func() time.Time
	newID func() string
}

// New creates the task store, loading the persisted collection. A load
// failure degrades to an empty collection rather than failing startup.
func New(repo repository.Repository, sched task.Scheduler, l log.Logger) *implUseCase {
	uc := &implUseCase{
		repo:  repo,
		sched: sched,
		l:     l,
		clock: time.Now,
		newID: uuid.NewString,
	}

	ctx := context.Background()
	tasks, err := repo.LoadAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.New LoadAll: %v, starting with empty collection", err)
		tasks = nil
	}
	uc.tasks = tasks
	return uc
}

// SetClock overrides the time source. Intended for tests.
func (uc *implUseCase) SetClock(clock func() time.Time) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.clock = clock
}
