package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"studynotes/internal/app"
	"studynotes/internal/config"
	"studynotes/internal/http"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	logger := app.NewLogger(os.Stdout, cfg)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx := context.Background()

	// Open storage and load the notes
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer func() {
		_ = application.Close()
	}()

	remoteCfg := application.Notes.Collection(ctx).Remote
	slog.Info("Notes service initialized",
		"remote_configured", remoteCfg.Configured(),
		"remote", remoteCfg.Owner+"/"+remoteCfg.Repo,
		"branch", remoteCfg.Branch,
		"path", remoteCfg.Path,
	)

	application.PullOnStart(ctx)

	// Create router with dependencies
	deps := &http.Deps{
		NotesService: application.Notes,
		Store:        application.Store,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("Remote configuration", "api_url", cfg.RemoteAPIURL, "timeout", cfg.RemoteTimeout)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
