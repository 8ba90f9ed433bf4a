package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	categoryHTTP "taskdeck/internal/category/delivery/http"
	"taskdeck/internal/middleware"
	settingsHTTP "taskdeck/internal/settings/delivery/http"
	taskHTTP "taskdeck/internal/task/delivery/http"
	"taskdeck/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	taskHandler     taskHTTP.Handler
	categoryHandler categoryHTTP.Handler
	settingsHandler settingsHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	TaskHandler     taskHTTP.Handler
	CategoryHandler categoryHTTP.Handler
	SettingsHandler settingsHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		taskHandler:     cfg.TaskHandler,
		categoryHandler: cfg.CategoryHandler,
		settingsHandler: cfg.SettingsHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.categoryHandler == nil {
		return errors.New("category handler is required")
	}
	if srv.settingsHandler == nil {
		return errors.New("settings handler is required")
	}
	return nil
}
