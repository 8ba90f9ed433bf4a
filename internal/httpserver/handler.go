package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	categoryHTTP "taskdeck/internal/category/delivery/http"
	settingsHTTP "taskdeck/internal/settings/delivery/http"
	taskHTTP "taskdeck/internal/task/delivery/http"
)

// Run maps all handlers and serves until the listener fails.
func (srv *HTTPServer) Run() error {
	srv.mapHandlers()
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	taskHTTP.RegisterRoutes(api, srv.taskHandler, srv.mw)
	categoryHTTP.RegisterRoutes(api, srv.categoryHandler)
	settingsHTTP.RegisterRoutes(api, srv.settingsHandler)

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
}
