package http

import (
	"taskdeck/internal/task"
	pkgErrors "taskdeck/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(400, "task title is required")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
