package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskdeck/config"
	_ "taskdeck/docs" // Swagger docs
	categoryHTTP "taskdeck/internal/category/delivery/http"
	categorySqlite "taskdeck/internal/category/repository/sqlite"
	categoryUC "taskdeck/internal/category/usecase"
	"taskdeck/internal/httpserver"
	"taskdeck/internal/middleware"
	"taskdeck/internal/reminder"
	settingsHTTP "taskdeck/internal/settings/delivery/http"
	settingsSqlite "taskdeck/internal/settings/repository/sqlite"
	settingsUC "taskdeck/internal/settings/usecase"
	"taskdeck/internal/storage"
	taskHTTP "taskdeck/internal/task/delivery/http"
	taskSqlite "taskdeck/internal/task/repository/sqlite"
	taskUsecase "taskdeck/internal/task/usecase"
	"taskdeck/pkg/datemath"
	"taskdeck/pkg/log"
	"taskdeck/pkg/notify"
)

// @title       Taskdeck API
// @description Personal task tracker: task lifecycle, filtered views and local reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Taskdeck...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Storage.DBPath)

	// 3. Storage
	db, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()

	// 4. Date parsing
	dateParser, dtErr := datemath.NewParser(cfg.Reminder.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Reminder.Timezone, dtErr)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 5. Reminder scheduler
	var notifier notify.Notifier = notify.NewDesktop(httpserver.ServiceName)
	if !cfg.Reminder.Enabled {
		logger.Warn(ctx, "Reminders disabled, notifications will be dropped")
		notifier = notify.Noop{}
	}
	sched := reminder.New(notifier, logger, cfg.Reminder.LeadMinutes)
	defer sched.CancelAll()

	// 6. Repositories and use cases
	taskRepo := taskSqlite.New(db, logger)
	taskUC := taskUsecase.New(taskRepo, sched, logger)

	catRepo := categorySqlite.New(db, logger)
	catUC := categoryUC.New(catRepo, logger)

	setRepo := settingsSqlite.New(db, logger)
	setUC := settingsUC.New(setRepo, sched, taskUC, logger)

	// Apply the persisted lead time before arming any timers.
	lead, err := setUC.GetReminderLead(ctx)
	if err != nil {
		logger.Warnf(ctx, "Could not load reminder lead, using default: %v", err)
	} else {
		sched.SetLeadMinutes(lead)
	}
	if tasks, lErr := taskUC.List(ctx); lErr != nil {
		logger.Errorf(ctx, "Could not list tasks for reminder reconcile: %v", lErr)
	} else {
		sched.Reconcile(tasks)
	}
	logger.Infof(ctx, "Armed %d reminder(s)", sched.PendingCount())

	// 7. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.RateLimit),
		TaskHandler:     taskHTTP.New(logger, taskUC, dateParser),
		CategoryHandler: categoryHTTP.New(logger, catUC),
		SettingsHandler: settingsHTTP.New(logger, setUC),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to build HTTP server: %v", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server stopped: %v", err)
	}
}
