package http

import (
	"time"

	"taskdeck/internal/model"
	"taskdeck/internal/query"
	"taskdeck/internal/task"
	"taskdeck/pkg/datemath"
)

// --- Request DTOs ---

type createReq struct {
	Title    string `json:"title"    binding:"required,min=1,max=255"`
	DueDate  string `json:"due_date" binding:"omitempty"`
	DueTime  string `json:"due_time" binding:"omitempty"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category string `json:"category" binding:"omitempty,max=100"`
	Notes    string `json:"notes"    binding:"max=2000"`
}

func (r createReq) toInput(due *time.Time, dueTime *time.Time) task.AddInput {
	return task.AddInput{
		Title:    r.Title,
		DueDate:  due,
		DueTime:  dueTime,
		Priority: model.ParsePriority(r.Priority),
		Category: r.Category,
		Notes:    r.Notes,
	}
}

type updateReq struct {
	ID       string `json:"-"` // populated from URI param
	Title    string `json:"title"    binding:"required,min=1,max=255"`
	DueDate  string `json:"due_date" binding:"omitempty"`
	DueTime  string `json:"due_time" binding:"omitempty"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category string `json:"category" binding:"omitempty,max=100"`
	Notes    string `json:"notes"    binding:"max=2000"`
}

func (r updateReq) toInput(due *time.Time, dueTime *time.Time) task.UpdateInput {
	return task.UpdateInput{
		ID:       r.ID,
		Title:    r.Title,
		DueDate:  due,
		DueTime:  dueTime,
		Priority: model.ParsePriority(r.Priority),
		Category: r.Category,
		Notes:    r.Notes,
	}
}

type listReq struct {
	Filter   string `form:"filter"`
	Category string `form:"category"`
	Search   string `form:"q"`
}

type softDeleteReq struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DueDate     string     `json:"due_date,omitempty"`
	DueTime     string     `json:"due_time,omitempty"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Deleted     bool       `json:"deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		Priority:    string(t.Priority),
		Category:    t.Category,
		Notes:       t.Notes,
		Deleted:     t.Deleted,
		DeletedAt:   t.DeletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(datemath.DateFormat)
	}
	if t.DueTime != nil {
		resp.DueTime = t.DueTime.Format(datemath.TimeFormat)
	}
	return resp
}

type taskDetailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskDetailResp(out task.TaskOutput) taskDetailResp {
	return taskDetailResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listResp{Tasks: items, Total: len(items)}
}

type groupResp struct {
	Date  string     `json:"date"`
	Tasks []taskResp `json:"tasks"`
}

type upcomingResp struct {
	Groups []groupResp `json:"groups"`
}

func (h *handler) newUpcomingResp(groups []query.Group) upcomingResp {
	out := upcomingResp{Groups: make([]groupResp, len(groups))}
	for i, g := range groups {
		bucket := groupResp{
			Date:  g.Date.Format(datemath.DateFormat),
			Tasks: make([]taskResp, len(g.Tasks)),
		}
		for j, t := range g.Tasks {
			bucket.Tasks[j] = newTaskResp(t)
		}
		out.Groups[i] = bucket
	}
	return out
}
