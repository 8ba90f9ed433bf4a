package http

import (
	"github.com/gin-gonic/gin"

	"taskdeck/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	tasks.Use(mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/upcoming", h.Upcoming)
		tasks.PUT("/:id", h.Update)
		tasks.POST("/delete", h.SoftDelete)
		tasks.POST("/:id/restore", h.Restore)
		tasks.DELETE("/:id", h.PermanentDelete)
		tasks.POST("/:id/toggle", h.Toggle)
	}
}
