// Package query is the pure filtering, sorting and grouping engine behind
// every task list view. It never mutates its input and takes the current
// time as a parameter, so results are fully deterministic.
package query

import (
	"sort"
	"strings"
	"time"

	"taskdeck/internal/model"
)

// Options selects and narrows a task view.
type Options struct {
	Filter   Filter
	Category string // exact match when non-empty
	Search   string // case-insensitive substring over title and notes
}

// Group is one calendar-day bucket of the upcoming view.
type Group struct {
	Date  time.Time
	Tasks []model.Task
}

// Apply filters and sorts the collection for display.
//
// Outside the deleted view, soft-deleted tasks are invisible no matter what
// other criteria say. An undated, incomplete task counts as due today.
func Apply(tasks []model.Task, opt Options, now time.Time) []model.Task {
	result := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if opt.Filter != FilterDeleted && t.Deleted {
			continue
		}
		if !matchStatus(t, opt.Filter, now) {
			continue
		}
		if opt.Category != "" && t.Category != opt.Category {
			continue
		}
		if opt.Search != "" && !matchSearch(t, opt.Search) {
			continue
		}
		result = append(result, t)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i], result[j])
	})
	return result
}

// GroupUpcoming buckets the upcoming view by calendar day, preserving the
// sorted order inside each bucket. Buckets come back in ascending date
// order. The filter is forced to upcoming, so every task has a due date.
func GroupUpcoming(tasks []model.Task, opt Options, now time.Time) []Group {
	opt.Filter = FilterUpcoming
	sorted := Apply(tasks, opt, now)

	var groups []Group
	index := make(map[time.Time]int)
	for _, t := range sorted {
		day := model.StartOfDay(*t.DueDate)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, Group{Date: day})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups
}

func matchStatus(t model.Task, f Filter, now time.Time) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterToday:
		// Undated tasks count as due today by convention.
		return !t.Completed && (t.DueDate == nil || t.DueOn(now))
	case FilterUpcoming:
		return !t.Completed && t.DueDate != nil && t.DueDate.After(model.StartOfDay(now))
	case FilterCompleted:
		return t.Completed
	case FilterDeleted:
		return t.Deleted
	default:
		return true
	}
}

func matchSearch(t model.Task, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Notes), needle)
}

// less implements the display order: incomplete first, then priority high
// to low, then dated before undated with earlier deadlines first, then
// ascending title.
func less(a, b model.Task) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}
	if wa, wb := a.Priority.Weight(), b.Priority.Weight(); wa != wb {
		return wa > wb
	}
	da, aok := a.Deadline()
	db, bok := b.Deadline()
	if aok != bok {
		return aok
	}
	if aok && !da.Equal(db) {
		return da.Before(db)
	}
	return a.Title < b.Title
}
