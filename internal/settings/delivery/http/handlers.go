package http

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/settings"
	"taskdeck/pkg/log"
	"taskdeck/pkg/response"
)

// Handler is the public interface for the settings HTTP delivery layer.
type Handler interface {
	GetReminderLead(c *gin.Context)
	SetReminderLead(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc settings.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for service settings.
func New(l log.Logger, uc settings.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

type leadReq struct {
	Minutes int `json:"minutes" binding:"required"`
}

type leadResp struct {
	Minutes int `json:"minutes"`
}

// GetReminderLead godoc
// @Summary     Get the reminder lead time
// @Description Returns the lead time in minutes before a deadline at which reminders fire.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} leadResp
// @Router      /api/v1/settings/reminder-lead [GET]
func (h *handler) GetReminderLead(c *gin.Context) {
	ctx := c.Request.Context()

	minutes, err := h.uc.GetReminderLead(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetReminderLead: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, leadResp{Minutes: minutes})
}

// SetReminderLead godoc
// @Summary     Set the reminder lead time
// @Description Persists a new lead time and reschedules all pending reminders. Non-positive values normalize to the 60 minute default.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body leadReq true "Lead time in minutes"
// @Success     200 {object} leadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/settings/reminder-lead [PUT]
func (h *handler) SetReminderLead(c *gin.Context) {
	ctx := c.Request.Context()

	var req leadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	minutes, err := h.uc.SetReminderLead(ctx, req.Minutes)
	if err != nil {
		h.l.Errorf(ctx, "uc.SetReminderLead: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, leadResp{Minutes: minutes})
}

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	settingsGroup := rg.Group("/settings")
	{
		settingsGroup.GET("/reminder-lead", h.GetReminderLead)
		settingsGroup.PUT("/reminder-lead", h.SetReminderLead)
	}
}
