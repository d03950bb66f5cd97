package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"news_reader/internal/app"
	"news_reader/internal/config"
	"news_reader/internal/netwatch"
	"news_reader/internal/service"
	"news_reader/internal/share"
	"news_reader/internal/source/seed"
	"news_reader/internal/storage/memory"
	"news_reader/internal/tui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed the article store
	src := seed.New(logger)
	articles, err := src.Load(ctx)
	if err != nil {
		logger.Error("failed to load articles", "source", src.Name(), "error", err)
		os.Exit(1)
	}
	store := memory.NewStore(articles)

	feed := service.NewFeedService(store, logger, cfg.Search)
	session := app.NewSession(feed, logger)
	sharer := share.New(logger)

	watcher := netwatch.New(cfg.Network, logger)
	go func() {
		_ = watcher.Start(ctx)
	}()

	logger.Info("starting reader",
		"source", src.Name(),
		"articles", store.Len(),
		"share_available", sharer.Available(),
	)

	model := tui.NewModel(session, sharer, cfg, watcher.Updates(), logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		logger.Error("reader exited with error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
