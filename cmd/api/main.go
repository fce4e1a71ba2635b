package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/giorgi26/Planner/config"
	_ "github.com/giorgi26/Planner/docs" // Swagger docs
	"github.com/giorgi26/Planner/internal/httpserver"
	"github.com/giorgi26/Planner/pkg/datemath"
	"github.com/giorgi26/Planner/pkg/kvstore"
	"github.com/giorgi26/Planner/pkg/log"
)

// @title       Planner API
// @description Week calendar, task status, tag filters and completion history.
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

	logger.Info(ctx, "Starting Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date math
	dateMathParser, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Storage
	store, err := kvstore.Open(kvstore.Config{
		Driver: cfg.Storage.Driver,
		Path:   cfg.Storage.Path,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer func() {
		if cErr := store.Close(); cErr != nil {
			logger.Warnf(ctx, "Failed to close storage: %v", cErr)
		}
	}()
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		Store:           store,
		DateMath:        dateMathParser,
		DefaultTags:     cfg.Planner.DefaultTags,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
