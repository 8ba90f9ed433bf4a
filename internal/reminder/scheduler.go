// Package reminder schedules at most one local notification per task,
// fired a configurable lead time before the task's deadline.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"taskdeck/internal/model"
	"taskdeck/pkg/log"
	"taskdeck/pkg/notify"
)

// DefaultLeadMinutes is used whenever the configured lead time is unset or
// non-positive.
const DefaultLeadMinutes = 60

// NormalizeLead converts a lead-time setting in minutes to a duration,
// substituting the default for non-positive values.
func NormalizeLead(minutes int) time.Duration {
	if minutes <= 0 {
		minutes = DefaultLeadMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// FireMoment computes when a reminder for the task should fire: the
// deadline minus the lead time. ok=false when the task has no due date or
// the fire moment is not in the future; a reminder that would already have
// fired is dropped, never fired immediately.
func FireMoment(t model.Task, lead time.Duration, now time.Time) (time.Time, bool) {
	deadline, ok := t.Deadline()
	if !ok {
		return time.Time{}, false
	}
	fireAt := deadline.Add(-lead)
	if !fireAt.After(now) {
		return time.Time{}, false
	}
	return fireAt, true
}

// Scheduler owns the pending reminder timers, keyed by task id. The store
// drives it on every relevant mutation: cancel first, then re-evaluate.
type Scheduler struct {
	mu      sync.Mutex
	pending map[string]*time.Timer
	lead    time.Duration

	notifier notify.Notifier
	clock    func() time.Time
	l        log.Logger
}

// New creates a Scheduler with the given lead time in minutes.
func New(notifier notify.Notifier, l log.Logger, leadMinutes int) *Scheduler {
	return &Scheduler{
		pending:  make(map[string]*time.Timer),
		lead:     NormalizeLead(leadMinutes),
		notifier: notifier,
		clock:    time.Now,
		l:        l,
	}
}

// SetClock overrides the time source. Intended for tests.
func (s *Scheduler) SetClock(clock func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
}

// SetLeadMinutes updates the lead time for future scheduling decisions.
// Already-pending reminders keep their fire moments until the next
// Reconcile or per-task re-evaluation.
func (s *Scheduler) SetLeadMinutes(minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lead = NormalizeLead(minutes)
}

// Schedule cancels any pending reminder for the task and registers a new
// one when the task is eligible: incomplete, not deleted, dated, and with a
// fire moment still in the future. Ineligible tasks end up with no pending
// reminder, which is the correct terminal state, not an error.
func (s *Scheduler) Schedule(t model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked(t.ID)

	if t.Completed || t.Deleted {
		return
	}
	fireAt, ok := FireMoment(t, s.lead, s.clock())
	if !ok {
		return
	}

	id, title := t.ID, t.Title
	s.pending[id] = time.AfterFunc(time.Until(fireAt), func() {
		s.fire(id, title)
	})
}

// Cancel removes the pending reminder for the id, if any.
func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(id)
}

// CancelAll drops every pending reminder.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
}

// Reconcile rebuilds the pending set from scratch against the full task
// collection. Called at startup and after the lead time changes; this is a
// complete reconciliation, not an incremental replay.
func (s *Scheduler) Reconcile(tasks []model.Task) {
	s.CancelAll()
	for _, t := range tasks {
		s.Schedule(t)
	}
}

// IsPending reports whether a reminder is currently registered for the id.
func (s *Scheduler) IsPending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[id]
	return ok
}

// PendingCount returns the number of registered reminders.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// fire delivers the notification and retires the timer. Delivery failures
// are logged and dropped; the next mutation or startup reconciliation is
// the implicit retry point.
func (s *Scheduler) fire(id, title string) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()

	if err := s.notifier.Notify("Task due soon", fmt.Sprintf("%s is coming up", title)); err != nil {
		s.l.Errorf(context.Background(), "reminder.fire notify %s: %v", id, err)
	}
}

func (s *Scheduler) cancelLocked(id string) {
	if timer, ok := s.pending[id]; ok {
		timer.Stop()
		delete(s.pending, id)
	}
}
