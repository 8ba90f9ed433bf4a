package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskdeck/config"
	"taskdeck/internal/middleware"
	"taskdeck/internal/model"
	"taskdeck/internal/query"
	"taskdeck/internal/task"
	taskHTTP "taskdeck/internal/task/delivery/http"
	"taskdeck/pkg/datemath"
	"taskdeck/pkg/log"
	"taskdeck/pkg/response"
)

// mockUseCase implements task.UseCase with overridable function fields.
type mockUseCase struct {
	addFn      func(ctx context.Context, input task.AddInput) (task.TaskOutput, error)
	updateFn   func(ctx context.Context, input task.UpdateInput) (task.TaskOutput, error)
	softDelFn  func(ctx context.Context, ids []string) error
	restoreFn  func(ctx context.Context, id string) (task.TaskOutput, error)
	permDelFn  func(ctx context.Context, id string) error
	toggleFn   func(ctx context.Context, id string) (task.TaskOutput, error)
	queryFn    func(ctx context.Context, input task.QueryInput) ([]model.Task, error)
	upcomingFn func(ctx context.Context, input task.QueryInput) ([]query.Group, error)
}

func (m *mockUseCase) Add(ctx context.Context, input task.AddInput) (task.TaskOutput, error) {
	return m.addFn(ctx, input)
}

func (m *mockUseCase) Update(ctx context.Context, input task.UpdateInput) (task.TaskOutput, error) {
	return m.updateFn(ctx, input)
}

func (m *mockUseCase) SoftDelete(ctx context.Context, ids []string) error {
	return m.softDelFn(ctx, ids)
}

func (m *mockUseCase) Restore(ctx context.Context, id string) (task.TaskOutput, error) {
	return m.restoreFn(ctx, id)
}

func (m *mockUseCase) PermanentlyDelete(ctx context.Context, id string) error {
	return m.permDelFn(ctx, id)
}

func (m *mockUseCase) ToggleCompletion(ctx context.Context, id string) (task.TaskOutput, error) {
	return m.toggleFn(ctx, id)
}

func (m *mockUseCase) List(ctx context.Context) ([]model.Task, error) {
	return nil, nil
}

func (m *mockUseCase) Query(ctx context.Context, input task.QueryInput) ([]model.Task, error) {
	return m.queryFn(ctx, input)
}

func (m *mockUseCase) Upcoming(ctx context.Context, input task.QueryInput) ([]query.Group, error) {
	return m.upcomingFn(ctx, input)
}

func newRouter(t *testing.T, uc task.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	mw := middleware.New(log.NewNop(), config.RateLimitConfig{RequestsPerMin: 10000})

	r := gin.New()
	api := r.Group("/api/v1")
	taskHTTP.RegisterRoutes(api, taskHTTP.New(log.NewNop(), uc, dates), mw)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotInput task.AddInput
		uc := &mockUseCase{
			addFn: func(ctx context.Context, input task.AddInput) (task.TaskOutput, error) {
				gotInput = input
				return task.TaskOutput{Task: model.Task{ID: "t1", Title: input.Title, Priority: input.Priority}}, nil
			},
		}
		r := newRouter(t, uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{
			"title":    "Buy milk",
			"due_date": "2026-05-08",
			"due_time": "14:30",
			"priority": "high",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if gotInput.Title != "Buy milk" || gotInput.Priority != model.PriorityHigh {
			t.Errorf("unexpected input: %+v", gotInput)
		}
		if gotInput.DueDate == nil || gotInput.DueDate.Format("2006-01-02") != "2026-05-08" {
			t.Errorf("due date not resolved: %v", gotInput.DueDate)
		}
		if gotInput.DueTime == nil || gotInput.DueTime.Format("15:04") != "14:30" {
			t.Errorf("due time not resolved: %v", gotInput.DueTime)
		}
	})

	t.Run("Relative Due Date Expression", func(t *testing.T) {
		var gotInput task.AddInput
		uc := &mockUseCase{
			addFn: func(ctx context.Context, input task.AddInput) (task.TaskOutput, error) {
				gotInput = input
				return task.TaskOutput{Task: model.Task{ID: "t1"}}, nil
			},
		}
		r := newRouter(t, uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{"title": "x", "due_date": "tomorrow"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if gotInput.DueDate == nil {
			t.Fatal("relative expression was not resolved")
		}
		want := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
		if gotInput.DueDate.Format("2006-01-02") != want {
			t.Errorf("due date = %v, want %s", gotInput.DueDate, want)
		}
	})

	t.Run("Missing Title Is Bad Request", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{})
		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{"notes": "no title"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Unparsable Due Date Is Bad Request", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{})
		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{"title": "x", "due_date": "someday"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Invalid Priority Is Bad Request", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{})
		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{"title": "x", "priority": "urgent"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestList(t *testing.T) {
	t.Run("Passes Filter Category And Search", func(t *testing.T) {
		var gotInput task.QueryInput
		uc := &mockUseCase{
			queryFn: func(ctx context.Context, input task.QueryInput) ([]model.Task, error) {
				gotInput = input
				return []model.Task{{ID: "t1", Title: "match"}}, nil
			},
		}
		r := newRouter(t, uc)

		w := doJSON(t, r, http.MethodGet, "/api/v1/tasks?filter=active&category=Work&q=milk", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if gotInput.Filter != query.FilterActive || gotInput.Category != "Work" || gotInput.Search != "milk" {
			t.Errorf("unexpected query input: %+v", gotInput)
		}

		resp := decodeResp(t, w)
		if resp.Message != response.MessageSuccess {
			t.Errorf("message = %q", resp.Message)
		}
	})

	t.Run("Unknown Filter Is Bad Request", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{})
		w := doJSON(t, r, http.MethodGet, "/api/v1/tasks?filter=bogus", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Unknown Id Is Not Found", func(t *testing.T) {
		uc := &mockUseCase{
			updateFn: func(ctx context.Context, input task.UpdateInput) (task.TaskOutput, error) {
				return task.TaskOutput{}, task.ErrTaskNotFound
			},
		}
		r := newRouter(t, uc)

		w := doJSON(t, r, http.MethodPut, "/api/v1/tasks/ghost", gin.H{"title": "x"})
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("Id From Path Reaches The Use Case", func(t *testing.T) {
		var gotInput task.UpdateInput
		uc := &mockUseCase{
			updateFn: func(ctx context.Context, input task.UpdateInput) (task.TaskOutput, error) {
				gotInput = input
				return task.TaskOutput{Task: model.Task{ID: input.ID, Title: input.Title}}, nil
			},
		}
		r := newRouter(t, uc)

		w := doJSON(t, r, http.MethodPut, "/api/v1/tasks/t42", gin.H{"title": "renamed"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if gotInput.ID != "t42" || gotInput.Title != "renamed" {
			t.Errorf("unexpected input: %+v", gotInput)
		}
	})
}

func TestSoftDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotIDs []string
		uc := &mockUseCase{
			softDelFn: func(ctx context.Context, ids []string) error {
				gotIDs = ids
				return nil
			},
		}
		r := newRouter(t, uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/delete", gin.H{"ids": []string{"a", "b"}})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if len(gotIDs) != 2 || gotIDs[0] != "a" || gotIDs[1] != "b" {
			t.Errorf("unexpected ids: %v", gotIDs)
		}
	})

	t.Run("Empty Id List Is Bad Request", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{})
		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/delete", gin.H{"ids": []string{}})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestRestore(t *testing.T) {
	uc := &mockUseCase{
		restoreFn: func(ctx context.Context, id string) (task.TaskOutput, error) {
			if id != "t1" {
				return task.TaskOutput{}, task.ErrTaskNotFound
			}
			return task.TaskOutput{Task: model.Task{ID: id, Title: "back"}}, nil
		},
	}
	r := newRouter(t, uc)

	t.Run("Success", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/t1/restore", nil)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, body %s", w.Code, w.Body.String())
		}
	})

	t.Run("Unknown Id Is Not Found", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/ghost/restore", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestPermanentDelete(t *testing.T) {
	uc := &mockUseCase{
		permDelFn: func(ctx context.Context, id string) error { return nil },
	}
	r := newRouter(t, uc)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/tasks/anything", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 even for unknown ids", w.Code)
	}
}

func TestToggle(t *testing.T) {
	uc := &mockUseCase{
		toggleFn: func(ctx context.Context, id string) (task.TaskOutput, error) {
			completedAt := time.Now()
			return task.TaskOutput{Task: model.Task{ID: id, Completed: true, CompletedAt: &completedAt}}, nil
		},
	}
	r := newRouter(t, uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/t1/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Data struct {
			Task struct {
				Completed bool `json:"completed"`
			} `json:"task"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Data.Task.Completed {
		t.Error("toggled task not reported completed")
	}
}

func TestUpcoming(t *testing.T) {
	day := time.Date(2026, 5, 7, 0, 0, 0, 0, time.Local)
	uc := &mockUseCase{
		upcomingFn: func(ctx context.Context, input task.QueryInput) ([]query.Group, error) {
			return []query.Group{{Date: day, Tasks: []model.Task{{ID: "t1", Title: "soon", DueDate: &day}}}}, nil
		},
	}
	r := newRouter(t, uc)

	w := doJSON(t, r, http.MethodGet, "/api/v1/tasks/upcoming", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Data struct {
			Groups []struct {
				Date string `json:"date"`
			} `json:"groups"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Data.Groups) != 1 || body.Data.Groups[0].Date != "2026-05-07" {
		t.Errorf("unexpected groups: %+v", body.Data.Groups)
	}
}
