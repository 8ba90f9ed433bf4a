package http

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/query"
	"taskdeck/internal/task"
	"taskdeck/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task. due_date accepts "YYYY-MM-DD" or expressions like "tomorrow" / "in 3 days"; due_time is "HH:MM".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	due, dueTime, err := h.parseDue(req.DueDate, req.DueTime)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, req.toInput(due, dueTime))
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the ordered task view for a status filter, optional category and search text.
// @Tags        Tasks
// @Produce     json
// @Param       filter   query string false "all|active|today|upcoming|completed|deleted (default all)"
// @Param       category query string false "Exact category match"
// @Param       q        query string false "Case-insensitive search over title and notes"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, filter, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.Query(ctx, task.QueryInput{
		Filter:   filter,
		Category: req.Category,
		Search:   req.Search,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Upcoming godoc
// @Summary     Upcoming tasks grouped by day
// @Description Returns incomplete, dated tasks due after today, bucketed by calendar day.
// @Tags        Tasks
// @Produce     json
// @Param       category query string false "Exact category match"
// @Param       q        query string false "Case-insensitive search over title and notes"
// @Success     200 {object} upcomingResp
// @Router      /api/v1/tasks/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	groups, err := h.uc.Upcoming(ctx, task.QueryInput{
		Filter:   query.FilterUpcoming,
		Category: req.Category,
		Search:   req.Search,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpcomingResp(groups))
}

// Update godoc
// @Summary     Update a task
// @Description Replaces the task's title, due date/time, priority, category and notes. Completion and deletion state are untouched.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "New task state"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	due, dueTime, err := h.parseDue(req.DueDate, req.DueTime)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput(due, dueTime))
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// SoftDelete godoc
// @Summary     Soft-delete tasks
// @Description Marks each given task deleted. Deleted tasks disappear from every view except the deleted filter and can be restored. Unknown ids are skipped.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body softDeleteReq true "Task ids"
// @Success     200 {object} response.Resp
// @Router      /api/v1/tasks/delete [POST]
func (h *handler) SoftDelete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSoftDeleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SoftDelete(ctx, req.IDs); err != nil {
		h.l.Errorf(ctx, "uc.SoftDelete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Restore godoc
// @Summary     Restore a soft-deleted task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/restore [POST]
func (h *handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.Restore(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Restore: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}

// PermanentDelete godoc
// @Summary     Permanently delete a task
// @Description Irreversibly removes the task. A missing id is not an error.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) PermanentDelete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.PermanentlyDelete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.PermanentlyDelete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle task completion
// @Description Flips the completion flag; completing a task cancels its reminder, un-completing re-evaluates scheduling.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.ToggleCompletion(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompletion: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskDetailResp(output))
}
