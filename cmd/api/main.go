package main

import (
	"context"
	"fmt"
	"os"

	"multi-calendar-sync/config"
	_ "multi-calendar-sync/docs" // Swagger docs
	authHTTP "multi-calendar-sync/internal/auth/delivery/http"
	authUC "multi-calendar-sync/internal/auth/usecase"
	calendarsHTTP "multi-calendar-sync/internal/calendars/delivery/http"
	calendarsUC "multi-calendar-sync/internal/calendars/usecase"
	"multi-calendar-sync/internal/httpserver"
	"multi-calendar-sync/internal/user"
	"multi-calendar-sync/internal/user/repository/sqlite"
	userUC "multi-calendar-sync/internal/user/usecase"
	"multi-calendar-sync/pkg/googleauth"
	"multi-calendar-sync/pkg/log"
)

// @title       Multi Calendar Sync API
// @description Google Calendar backend for batched multi-user event operations.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	logger.Info(ctx, "Starting Multi Calendar Sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Batch policy: %s", cfg.Batch.Policy)

	// 3. OAuth binder
	binder := googleauth.NewBinder(googleauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})

	// 4. User store (optional). Without it the service still serves every
	// endpoint; it just keeps no record of authorized accounts or events.
	var users user.UseCase
	if cfg.Database.Path != "" {
		db, dbErr := sqlite.Open(cfg.Database.Path)
		if dbErr != nil {
			logger.Error(ctx, "Failed to open user store: ", dbErr)
			os.Exit(1)
		}
		defer db.Close()

		users = userUC.New(sqlite.New(db, logger), logger)
		logger.Infof(ctx, "User store ready at %s", cfg.Database.Path)
	} else {
		logger.Warn(ctx, "database.path empty, running without persistence")
	}

	// 5. UseCases (nil factories select the real Google API clients)
	calendarsUseCase := calendarsUC.New(logger, binder, nil, users, cfg.Batch.Policy)
	authUseCase := authUC.New(logger, binder, nil, users)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		AppConfig:        cfg,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AuthHandler:      authHTTP.New(logger, authUseCase),
		CalendarsHandler: calendarsHTTP.New(logger, calendarsUseCase),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
