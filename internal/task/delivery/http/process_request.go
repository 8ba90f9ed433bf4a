package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/query"
	pkgErrors "taskdeck/pkg/errors"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update request body and URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(400, "id is required")
	}
	return req, nil
}

// processListReq binds the list query parameters and resolves the filter.
func (h *handler) processListReq(c *gin.Context) (listReq, query.Filter, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, query.FilterAll, err
	}
	filter, ok := query.ParseFilter(req.Filter)
	if !ok {
		return req, filter, pkgErrors.NewHTTPError(400, "unknown filter: "+req.Filter)
	}
	return req, filter, nil
}

// processSoftDeleteReq binds the bulk soft-delete request body.
func (h *handler) processSoftDeleteReq(c *gin.Context) (softDeleteReq, error) {
	var req softDeleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// parseDue resolves the optional due-date expression and time-of-day
// strings from a request. Invalid values reject the request instead of
// silently moving the deadline.
func (h *handler) parseDue(dueDate, dueTime string) (*time.Time, *time.Time, error) {
	var due, tod *time.Time

	if dueDate != "" {
		parsed, err := h.dates.ParseDate(dueDate, time.Now())
		if err != nil {
			return nil, nil, pkgErrors.NewHTTPError(400, err.Error())
		}
		due = &parsed
	}
	if dueTime != "" {
		parsed, err := h.dates.ParseTimeOfDay(dueTime)
		if err != nil {
			return nil, nil, pkgErrors.NewHTTPError(400, err.Error())
		}
		tod = &parsed
	}
	return due, tod, nil
}
