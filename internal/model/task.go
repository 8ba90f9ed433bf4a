package model

import "time"

// Task is the core domain entity: a single tracked to-do item.
//
// Optional timestamps are pointers so that absence survives serialization.
// CompletedAt is non-nil exactly when Completed is true, and DeletedAt is
// non-nil exactly when Deleted is true. A task may be completed and deleted
// at the same time.
type Task struct {
	ID          string
	Title       string
	Completed   bool
	CompletedAt *time.Time
	DueDate     *time.Time // calendar day, normalized to local midnight
	DueTime     *time.Time // time of day; only hour and minute are meaningful
	Priority    Priority
	Category    string
	Notes       string
	Deleted     bool
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Deadline combines DueDate and DueTime into the moment the task is due.
// Without a DueTime the deadline is the start of the due day. Returns
// ok=false when the task has no due date; a DueTime alone is not a deadline.
func (t Task) Deadline() (time.Time, bool) {
	if t.DueDate == nil {
		return time.Time{}, false
	}
	d := *t.DueDate
	if t.DueTime != nil {
		return time.Date(d.Year(), d.Month(), d.Day(),
			t.DueTime.Hour(), t.DueTime.Minute(), 0, 0, d.Location()), true
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()), true
}

// DueOn reports whether the task's due date falls on the same calendar day.
func (t Task) DueOn(day time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay truncates ts to local midnight.
func StartOfDay(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}
