package sqlite

import (
	"context"
	"database/sql"

	repo "taskdeck/internal/category/repository"
	"taskdeck/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the category registry.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("category/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// LoadCustom returns custom names in insertion order (rowid order).
func (r *implRepository) LoadCustom(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM categories ORDER BY rowid;`)
	if err != nil {
		r.l.Errorf(ctx, "category/repository/sqlite.LoadCustom: %v", err)
		return nil, repo.ErrFailedToLoad
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			r.l.Errorf(ctx, "category/repository/sqlite.LoadCustom scan: %v", err)
			return nil, repo.ErrFailedToLoad
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "category/repository/sqlite.LoadCustom rows: %v", err)
		return nil, repo.ErrFailedToLoad
	}
	return names, nil
}

// AppendCustom stores one more custom name.
func (r *implRepository) AppendCustom(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO categories (name) VALUES (?)`, name); err != nil {
		r.l.Errorf(ctx, "category/repository/sqlite.AppendCustom: %v", err)
		return repo.ErrFailedToAppend
	}
	return nil
}
