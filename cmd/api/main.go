package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskmagic/config"
	_ "taskmagic/docs" // Swagger docs
	"taskmagic/internal/httpserver"
	taskHTTP "taskmagic/internal/task/delivery/http"
	"taskmagic/internal/task/delivery/webhook"
	"taskmagic/internal/task/repository/vikunja"
	"taskmagic/internal/task/usecase"
	"taskmagic/pkg/gcalendar"
	"taskmagic/pkg/log"
)

// @title       Taskmagic API
// @description Quick-add enrichment for Vikunja: extracts due dates, priorities, projects, labels and recurrence from freeform task titles.
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

	logger.Info(ctx, "Starting taskmagic...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Vikunja URL: %s", cfg.Vikunja.URL)

	// 3. Vikunja store
	vikunjaClient := vikunja.NewClient(ctx, cfg.Vikunja.URL, cfg.Vikunja.Token,
		time.Duration(cfg.Vikunja.TimeoutSeconds)*time.Second)
	store := vikunja.New(vikunjaClient, logger)

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GCalendar.Enabled {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GCalendar.CredentialsFile)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Task UseCase
	taskUC := usecase.New(logger, store, calendarClient,
		usecase.CalendarOptions{
			CalendarID:    cfg.GCalendar.CalendarID,
			EventDuration: time.Duration(cfg.GCalendar.EventDurationMinutes) * time.Minute,
		},
		time.Duration(cfg.Enrich.CacheTTLMinutes)*time.Minute)

	// 6. Delivery handlers
	taskHandler := taskHTTP.New(logger, taskUC)

	srvCfg := httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskHandler: taskHandler,
	}
	if cfg.Webhook.Enabled {
		if cfg.Webhook.Secret == "" {
			logger.Warn(ctx, "Webhook signature validation disabled: webhook.secret is empty")
		}
		srvCfg.WebhookHandler = webhook.NewHandler(taskUC, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
	} else {
		logger.Warn(ctx, "Webhook intake disabled by config")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run until interrupted
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
