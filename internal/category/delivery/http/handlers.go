package http

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/category"
	pkgErrors "taskdeck/pkg/errors"
	"taskdeck/pkg/log"
	"taskdeck/pkg/response"
)

// Handler is the public interface for the category HTTP delivery layer.
type Handler interface {
	Add(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc category.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the category registry.
func New(l log.Logger, uc category.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

type addReq struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type listResp struct {
	Categories []string `json:"categories"`
}

// Add godoc
// @Summary     Add a category
// @Description Registers a custom category name. Adding an existing name, built-in or custom, is a silent no-op.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Category name"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/categories [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Add(ctx, req.Name); err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// List godoc
// @Summary     List categories
// @Description Returns built-in categories followed by custom ones in insertion order.
// @Tags        Categories
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/categories [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	all, err := h.uc.All(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.All: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listResp{Categories: all})
}

func (h *handler) mapError(err error) error {
	switch err {
	case category.ErrEmptyName:
		return pkgErrors.NewHTTPError(400, "category name is required")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	categories := rg.Group("/categories")
	{
		categories.POST("", h.Add)
		categories.GET("", h.List)
	}
}
