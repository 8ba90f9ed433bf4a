package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskdeck/internal/model"
	"taskdeck/internal/task"
	"taskdeck/internal/task/usecase"
	"taskdeck/pkg/log"
)

// mock dependencies

type mockRepo struct {
	loaded   []model.Task
	loadErr  error
	failAll  bool
	inserted []model.Task
	updated  []model.Task
	deleted  []string
}

func (m *mockRepo) LoadAll(ctx context.Context) ([]model.Task, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.loaded, nil
}

func (m *mockRepo) InsertTask(ctx context.Context, t model.Task) error {
	if m.failAll {
		return errors.New("db error")
	}
	m.inserted = append(m.inserted, t)
	return nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, t model.Task) error {
	if m.failAll {
		return errors.New("db error")
	}
	m.updated = append(m.updated, t)
	return nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	if m.failAll {
		return errors.New("db error")
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockScheduler struct {
	scheduled []string
	cancelled []string
}

func (m *mockScheduler) Schedule(t model.Task) { m.scheduled = append(m.scheduled, t.ID) }
func (m *mockScheduler) Cancel(id string)      { m.cancelled = append(m.cancelled, id) }

func (m *mockScheduler) lastScheduled() string {
	if len(m.scheduled) == 0 {
		return ""
	}
	return m.scheduled[len(m.scheduled)-1]
}

var now = time.Date(2026, 5, 6, 10, 0, 0, 0, time.Local)

func newStore(repo *mockRepo, sched *mockScheduler) task.UseCase {
	uc := usecase.New(repo, sched, log.NewNop())
	uc.SetClock(func() time.Time { return now })
	return uc
}

// checkTimestamps asserts the flag/timestamp pairing that must hold after
// every operation.
func checkTimestamps(t *testing.T, got model.Task) {
	t.Helper()
	if got.Completed != (got.CompletedAt != nil) {
		t.Errorf("task %s: Completed=%v but CompletedAt=%v", got.ID, got.Completed, got.CompletedAt)
	}
	if got.Deleted != (got.DeletedAt != nil) {
		t.Errorf("task %s: Deleted=%v but DeletedAt=%v", got.ID, got.Deleted, got.DeletedAt)
	}
}

func mustAdd(t *testing.T, uc task.UseCase, input task.AddInput) model.Task {
	t.Helper()
	out, err := uc.Add(context.Background(), input)
	if err != nil {
		t.Fatalf("Add(%q): %v", input.Title, err)
	}
	return out.Task
}

func TestNew(t *testing.T) {
	t.Run("Loads Persisted Collection", func(t *testing.T) {
		repo := &mockRepo{loaded: []model.Task{
			{ID: "a", Title: "persisted", Priority: model.PriorityMedium},
		}}
		uc := newStore(repo, &mockScheduler{})
		tasks, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(tasks) != 1 || tasks[0].ID != "a" {
			t.Errorf("unexpected collection: %+v", tasks)
		}
	})

	t.Run("Load Failure Starts Empty", func(t *testing.T) {
		repo := &mockRepo{loadErr: errors.New("corrupt")}
		uc := newStore(repo, &mockScheduler{})
		tasks, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("expected empty collection, got %+v", tasks)
		}
	})
}

func TestAdd(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := &mockRepo{}
		sched := &mockScheduler{}
		uc := newStore(repo, sched)

		due := time.Date(2026, 5, 8, 15, 30, 0, 0, time.Local)
		got := mustAdd(t, uc, task.AddInput{Title: "  Buy milk  ", DueDate: &due, Priority: model.PriorityHigh})

		if got.ID == "" {
			t.Error("expected a generated id")
		}
		if got.Title != "Buy milk" {
			t.Errorf("title not trimmed: %q", got.Title)
		}
		if got.DueDate == nil || !got.DueDate.Equal(time.Date(2026, 5, 8, 0, 0, 0, 0, time.Local)) {
			t.Errorf("due date not normalized to midnight: %v", got.DueDate)
		}
		if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
			t.Errorf("timestamps not set from clock: %v %v", got.CreatedAt, got.UpdatedAt)
		}
		checkTimestamps(t, got)
		if len(repo.inserted) != 1 {
			t.Errorf("expected 1 insert, got %d", len(repo.inserted))
		}
		if sched.lastScheduled() != got.ID {
			t.Errorf("new task was not handed to the scheduler")
		}
	})

	t.Run("Blank Title Rejected", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		if _, err := uc.Add(context.Background(), task.AddInput{Title: "   "}); !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
		tasks, _ := uc.List(context.Background())
		if len(tasks) != 0 {
			t.Errorf("rejected add still grew the collection")
		}
	})

	t.Run("Defaults To Medium Priority", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		got := mustAdd(t, uc, task.AddInput{Title: "no priority"})
		if got.Priority != model.PriorityMedium {
			t.Errorf("priority = %v, want medium", got.Priority)
		}
	})

	t.Run("Persist Failure Keeps Task In Memory", func(t *testing.T) {
		repo := &mockRepo{failAll: true}
		uc := newStore(repo, &mockScheduler{})
		got := mustAdd(t, uc, task.AddInput{Title: "survives"})
		tasks, _ := uc.List(context.Background())
		if len(tasks) != 1 || tasks[0].ID != got.ID {
			t.Errorf("task lost after persist failure: %+v", tasks)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Replaces Mutable Fields", func(t *testing.T) {
		repo := &mockRepo{}
		sched := &mockScheduler{}
		uc := newStore(repo, sched)
		created := mustAdd(t, uc, task.AddInput{Title: "old", Category: "Work", Notes: "draft"})

		due := time.Date(2026, 5, 9, 0, 0, 0, 0, time.Local)
		out, err := uc.Update(context.Background(), task.UpdateInput{
			ID:       created.ID,
			Title:    "new",
			DueDate:  &due,
			Priority: model.PriorityLow,
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		got := out.Task
		if got.Title != "new" || got.Category != "" || got.Notes != "" {
			t.Errorf("mutable fields not replaced wholesale: %+v", got)
		}
		if got.Priority != model.PriorityLow {
			t.Errorf("priority = %v, want low", got.Priority)
		}
		if got.DueDate == nil || !got.DueDate.Equal(due) {
			t.Errorf("due date = %v, want %v", got.DueDate, due)
		}
		if sched.cancelled[len(sched.cancelled)-1] != created.ID {
			t.Error("update did not cancel the old reminder")
		}
		if sched.lastScheduled() != created.ID {
			t.Error("update did not re-evaluate scheduling")
		}
	})

	t.Run("Nil Due Date Clears It", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		due := time.Date(2026, 5, 9, 0, 0, 0, 0, time.Local)
		created := mustAdd(t, uc, task.AddInput{Title: "dated", DueDate: &due})

		out, err := uc.Update(context.Background(), task.UpdateInput{ID: created.ID, Title: "dated"})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if out.Task.DueDate != nil {
			t.Errorf("due date not cleared: %v", out.Task.DueDate)
		}
	})

	t.Run("Preserves Completion State", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		created := mustAdd(t, uc, task.AddInput{Title: "done soon"})
		if _, err := uc.ToggleCompletion(context.Background(), created.ID); err != nil {
			t.Fatalf("ToggleCompletion: %v", err)
		}

		out, err := uc.Update(context.Background(), task.UpdateInput{ID: created.ID, Title: "renamed"})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if !out.Task.Completed || out.Task.CompletedAt == nil {
			t.Error("update clobbered the completion state")
		}
		checkTimestamps(t, out.Task)
	})

	t.Run("Unknown Id", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		if _, err := uc.Update(context.Background(), task.UpdateInput{ID: "ghost", Title: "x"}); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Blank Title Rejected", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		created := mustAdd(t, uc, task.AddInput{Title: "keep me"})
		if _, err := uc.Update(context.Background(), task.UpdateInput{ID: created.ID, Title: " "}); !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})
}

func TestSoftDelete(t *testing.T) {
	t.Run("Marks Deleted And Cancels Reminders", func(t *testing.T) {
		sched := &mockScheduler{}
		uc := newStore(&mockRepo{}, sched)
		a := mustAdd(t, uc, task.AddInput{Title: "a"})
		b := mustAdd(t, uc, task.AddInput{Title: "b"})

		if err := uc.SoftDelete(context.Background(), []string{a.ID, b.ID}); err != nil {
			t.Fatalf("SoftDelete: %v", err)
		}

		tasks, _ := uc.List(context.Background())
		for _, got := range tasks {
			if !got.Deleted {
				t.Errorf("task %s not marked deleted", got.ID)
			}
			checkTimestamps(t, got)
		}
		if len(sched.cancelled) != 2 {
			t.Errorf("expected 2 reminder cancels, got %d", len(sched.cancelled))
		}
	})

	t.Run("Unknown Ids Are Skipped", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		a := mustAdd(t, uc, task.AddInput{Title: "a"})
		if err := uc.SoftDelete(context.Background(), []string{"ghost", a.ID}); err != nil {
			t.Fatalf("SoftDelete: %v", err)
		}
		tasks, _ := uc.List(context.Background())
		if !tasks[0].Deleted {
			t.Error("known id was not deleted")
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		a := mustAdd(t, uc, task.AddInput{Title: "a"})
		if err := uc.SoftDelete(context.Background(), []string{a.ID}); err != nil {
			t.Fatalf("SoftDelete: %v", err)
		}
		tasks, _ := uc.List(context.Background())
		first := *tasks[0].DeletedAt

		if err := uc.SoftDelete(context.Background(), []string{a.ID}); err != nil {
			t.Fatalf("second SoftDelete: %v", err)
		}
		tasks, _ = uc.List(context.Background())
		if !tasks[0].DeletedAt.Equal(first) {
			t.Error("second soft delete changed DeletedAt")
		}
	})

	t.Run("Completed Task Keeps Completion", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		a := mustAdd(t, uc, task.AddInput{Title: "a"})
		if _, err := uc.ToggleCompletion(context.Background(), a.ID); err != nil {
			t.Fatalf("ToggleCompletion: %v", err)
		}
		if err := uc.SoftDelete(context.Background(), []string{a.ID}); err != nil {
			t.Fatalf("SoftDelete: %v", err)
		}
		tasks, _ := uc.List(context.Background())
		got := tasks[0]
		if !got.Completed || !got.Deleted {
			t.Errorf("expected completed and deleted, got %+v", got)
		}
		checkTimestamps(t, got)
	})
}

func TestRestore(t *testing.T) {
	t.Run("Clears Deletion State", func(t *testing.T) {
		sched := &mockScheduler{}
		uc := newStore(&mockRepo{}, sched)
		due := time.Date(2026, 5, 9, 0, 0, 0, 0, time.Local)
		a := mustAdd(t, uc, task.AddInput{Title: "a", DueDate: &due})
		if err := uc.SoftDelete(context.Background(), []string{a.ID}); err != nil {
			t.Fatalf("SoftDelete: %v", err)
		}

		out, err := uc.Restore(context.Background(), a.ID)
		if err != nil {
			t.Fatalf("Restore: %v", err)
		}
		if out.Task.Deleted || out.Task.DeletedAt != nil {
			t.Errorf("deletion state not cleared: %+v", out.Task)
		}
		if sched.lastScheduled() != a.ID {
			t.Error("restore did not re-evaluate scheduling")
		}
	})

	t.Run("Completed Task Is Not Rescheduled", func(t *testing.T) {
		sched := &mockScheduler{}
		uc := newStore(&mockRepo{}, sched)
		a := mustAdd(t, uc, task.AddInput{Title: "a"})
		if _, err := uc.ToggleCompletion(context.Background(), a.ID); err != nil {
			t.Fatalf("ToggleCompletion: %v", err)
		}
		if err := uc.SoftDelete(context.Background(), []string{a.ID}); err != nil {
			t.Fatalf("SoftDelete: %v", err)
		}

		before := len(sched.scheduled)
		if _, err := uc.Restore(context.Background(), a.ID); err != nil {
			t.Fatalf("Restore: %v", err)
		}
		if len(sched.scheduled) != before {
			t.Error("restore scheduled a reminder for a completed task")
		}
	})

	t.Run("Not Deleted Is A No-Op", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		a := mustAdd(t, uc, task.AddInput{Title: "a"})
		out, err := uc.Restore(context.Background(), a.ID)
		if err != nil {
			t.Fatalf("Restore: %v", err)
		}
		if out.Task.Deleted {
			t.Error("no-op restore reported a deleted task")
		}
	})

	t.Run("Unknown Id", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		if _, err := uc.Restore(context.Background(), "ghost"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestPermanentlyDelete(t *testing.T) {
	t.Run("Removes From Collection", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newStore(repo, &mockScheduler{})
		a := mustAdd(t, uc, task.AddInput{Title: "a"})
		b := mustAdd(t, uc, task.AddInput{Title: "b"})

		if err := uc.PermanentlyDelete(context.Background(), a.ID); err != nil {
			t.Fatalf("PermanentlyDelete: %v", err)
		}
		tasks, _ := uc.List(context.Background())
		if len(tasks) != 1 || tasks[0].ID != b.ID {
			t.Errorf("unexpected collection after delete: %+v", tasks)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != a.ID {
			t.Errorf("repository delete not mirrored: %v", repo.deleted)
		}
	})

	t.Run("Unknown Id Is A No-Op", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		if err := uc.PermanentlyDelete(context.Background(), "ghost"); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	})
}

func TestToggleCompletion(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		sched := &mockScheduler{}
		uc := newStore(&mockRepo{}, sched)
		a := mustAdd(t, uc, task.AddInput{Title: "a"})

		out, err := uc.ToggleCompletion(context.Background(), a.ID)
		if err != nil {
			t.Fatalf("ToggleCompletion: %v", err)
		}
		if !out.Task.Completed || out.Task.CompletedAt == nil {
			t.Errorf("expected completed with timestamp: %+v", out.Task)
		}
		if sched.cancelled[len(sched.cancelled)-1] != a.ID {
			t.Error("completing did not cancel the reminder")
		}

		out, err = uc.ToggleCompletion(context.Background(), a.ID)
		if err != nil {
			t.Fatalf("second ToggleCompletion: %v", err)
		}
		if out.Task.Completed || out.Task.CompletedAt != nil {
			t.Errorf("expected incomplete with no timestamp: %+v", out.Task)
		}
		if sched.lastScheduled() != a.ID {
			t.Error("un-completing did not re-evaluate scheduling")
		}
		checkTimestamps(t, out.Task)
	})

	t.Run("Unknown Id", func(t *testing.T) {
		uc := newStore(&mockRepo{}, &mockScheduler{})
		if _, err := uc.ToggleCompletion(context.Background(), "ghost"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestListReturnsCopy(t *testing.T) {
	uc := newStore(&mockRepo{}, &mockScheduler{})
	mustAdd(t, uc, task.AddInput{Title: "original"})

	tasks, _ := uc.List(context.Background())
	tasks[0].Title = "tampered"

	again, _ := uc.List(context.Background())
	if again[0].Title != "original" {
		t.Error("List exposed the store's backing slice")
	}
}

func TestQueryViews(t *testing.T) {
	uc := newStore(&mockRepo{}, &mockScheduler{})
	tomorrow := now.AddDate(0, 0, 1)
	dayAfter := now.AddDate(0, 0, 2)

	mustAdd(t, uc, task.AddInput{Title: "loose end"})
	mustAdd(t, uc, task.AddInput{Title: "due tomorrow", DueDate: &tomorrow})
	mustAdd(t, uc, task.AddInput{Title: "due later", DueDate: &dayAfter})
	trash := mustAdd(t, uc, task.AddInput{Title: "trash me"})
	if err := uc.SoftDelete(context.Background(), []string{trash.ID}); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	t.Run("Query Applies Filter", func(t *testing.T) {
		got, err := uc.Query(context.Background(), task.QueryInput{Filter: "upcoming"})
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 upcoming tasks, got %d", len(got))
		}
	})

	t.Run("Query Hides Deleted By Default", func(t *testing.T) {
		got, err := uc.Query(context.Background(), task.QueryInput{})
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		for _, item := range got {
			if item.Deleted {
				t.Errorf("deleted task %q visible in default view", item.Title)
			}
		}
	})

	t.Run("Upcoming Groups By Day", func(t *testing.T) {
		groups, err := uc.Upcoming(context.Background(), task.QueryInput{})
		if err != nil {
			t.Fatalf("Upcoming: %v", err)
		}
		if len(groups) != 2 {
			t.Fatalf("expected 2 day groups, got %d", len(groups))
		}
		if !groups[0].Date.Before(groups[1].Date) {
			t.Error("groups not in ascending date order")
		}
	})
}
