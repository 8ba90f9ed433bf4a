package sqlite

import (
	"context"
	"database/sql"
	"strconv"

	repo "taskdeck/internal/settings/repository"
	"taskdeck/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for service settings.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("settings/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// GetInt returns the stored value for the key; ok=false when unset or
// unparsable.
func (r *implRepository) GetInt(ctx context.Context, key string) (int, bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "settings/repository/sqlite.GetInt %s: %v", key, err)
		return 0, false, repo.ErrFailedToGet
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		// Malformed persisted data reads as unset, not as a crash.
		r.l.Warnf(ctx, "settings/repository/sqlite.GetInt %s: malformed value %q", key, raw)
		return 0, false, nil
	}
	return value, true, nil
}

// SetInt stores the value under the key, replacing any prior value.
func (r *implRepository) SetInt(ctx context.Context, key string, value int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, strconv.Itoa(value))
	if err != nil {
		r.l.Errorf(ctx, "settings/repository/sqlite.SetInt %s: %v", key, err)
		return repo.ErrFailedToSet
	}
	return nil
}
