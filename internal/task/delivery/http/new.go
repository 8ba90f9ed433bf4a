package http

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/task"
	"taskdeck/pkg/datemath"
	"taskdeck/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Upcoming(c *gin.Context)
	Update(c *gin.Context)
	SoftDelete(c *gin.Context)
	Restore(c *gin.Context)
	PermanentDelete(c *gin.Context)
	Toggle(c *gin.Context)
}

var _ Handler = (*handler)(nil)

type handler struct {
	l     log.Logger
	uc    task.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
