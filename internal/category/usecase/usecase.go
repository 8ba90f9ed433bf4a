package usecase

import (
	"context"
	"strings"
	"sync"

	"taskdeck/internal/category"
	"taskdeck/internal/category/repository"
	"taskdeck/pkg/log"
)

// implUseCase is the private implementation of category.UseCase.
type implUseCase struct {
	mu     sync.Mutex
	custom []string

	repo repository.Repository
	l    log.Logger
}

// New creates the category registry, loading persisted custom names. A
// load failure degrades to an empty custom list.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	uc := &implUseCase{repo: repo, l: l}

	ctx := context.Background()
	custom, err := repo.LoadCustom(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.New LoadCustom: %v, starting with empty custom list", err)
		custom = nil
	}
	uc.custom = custom
	return uc
}

// Add registers a custom category. Names already present, built-in or
// custom, are silently ignored.
func (uc *implUseCase) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return category.ErrEmptyName
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, b := range category.Builtin {
		if b == name {
			return nil
		}
	}
	for _, c := range uc.custom {
		if c == name {
			return nil
		}
	}

	uc.custom = append(uc.custom, name)

	if err := uc.repo.AppendCustom(ctx, name); err != nil {
		uc.l.Errorf(ctx, "uc.Add AppendCustom %q: %v", name, err)
	}
	return nil
}

// All returns built-ins followed by custom names in insertion order.
func (uc *implUseCase) All(ctx context.Context) ([]string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	all := make([]string, 0, len(category.Builtin)+len(uc.custom))
	all = append(all, category.Builtin...)
	all = append(all, uc.custom...)
	return all, nil
}
