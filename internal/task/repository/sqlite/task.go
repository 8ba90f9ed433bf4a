package sqlite

import (
	"context"
	"database/sql"
	"time"

	"taskdeck/internal/model"
	repo "taskdeck/internal/task/repository"
)

const (
	dateFormat = "2006-01-02"
	timeFormat = "15:04"
)

const taskColumns = `id, title, completed, completed_at, due_date, due_time,
	priority, category, notes, deleted, deleted_at, created_at, updated_at`

// LoadAll returns every persisted task in insertion order.
func (r *implRepository) LoadAll(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY rowid;`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LoadAll"), err)
		return nil, repo.ErrFailedToLoad
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("LoadAll"), err)
			return nil, repo.ErrFailedToLoad
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("LoadAll"), err)
		return nil, repo.ErrFailedToLoad
	}
	return tasks, nil
}

// InsertTask appends a new task row.
func (r *implRepository) InsertTask(ctx context.Context, t model.Task) error {
	const query = `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, taskArgs(t)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertTask"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// UpdateTask replaces the row matching the task id.
func (r *implRepository) UpdateTask(ctx context.Context, t model.Task) error {
	const query = `
		UPDATE tasks SET title = ?, completed = ?, completed_at = ?,
			due_date = ?, due_time = ?, priority = ?, category = ?, notes = ?,
			deleted = ?, deleted_at = ?, created_at = ?, updated_at = ?
		WHERE id = ?`

	args := append(taskArgs(t)[1:], t.ID)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteTask removes the row entirely. Missing ids are not an error.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// taskArgs flattens a task into column order. Optional fields become NULL,
// never sentinel strings, so absence round-trips.
func taskArgs(t model.Task) []any {
	return []any{
		t.ID,
		t.Title,
		boolToInt(t.Completed),
		rfc3339OrNull(t.CompletedAt),
		formatOrNull(t.DueDate, dateFormat),
		formatOrNull(t.DueTime, timeFormat),
		string(t.Priority),
		t.Category,
		t.Notes,
		boolToInt(t.Deleted),
		rfc3339OrNull(t.DeletedAt),
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func scanTask(rows *sql.Rows) (model.Task, error) {
	var t model.Task
	var completed, deleted int
	var completedAt, dueDate, dueTime, deletedAt sql.NullString
	var createdAt, updatedAt, priority string

	if err := rows.Scan(&t.ID, &t.Title, &completed, &completedAt, &dueDate, &dueTime,
		&priority, &t.Category, &t.Notes, &deleted, &deletedAt, &createdAt, &updatedAt); err != nil {
		return model.Task{}, err
	}

	t.Completed = completed == 1
	t.Deleted = deleted == 1
	t.Priority = model.ParsePriority(priority)
	t.CompletedAt = parseRFC3339(completedAt)
	t.DeletedAt = parseRFC3339(deletedAt)
	t.DueDate = parseLocal(dueDate, dateFormat)
	t.DueTime = parseLocal(dueTime, timeFormat)
	if parsed, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = parsed
	}
	if parsed, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		t.UpdatedAt = parsed
	}

	// Keep stored flags and timestamps consistent even if the row was
	// written by an older build: the flag wins, the timestamp follows.
	if !t.Completed {
		t.CompletedAt = nil
	}
	if !t.Deleted {
		t.DeletedAt = nil
	}
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func rfc3339OrNull(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339), Valid: true}
}

func formatOrNull(t *time.Time, layout string) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(layout), Valid: true}
}

func parseRFC3339(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseLocal(s sql.NullString, layout string) *time.Time {
	if !s.Valid {
		return nil
	}
	parsed, err := time.ParseInLocation(layout, s.String, time.Local)
	if err != nil {
		return nil
	}
	return &parsed
}
