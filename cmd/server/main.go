package main

import (
	"context"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/honeycarbs/career-navigator/internal/config"
	"github.com/honeycarbs/career-navigator/internal/mcp"
	"github.com/honeycarbs/career-navigator/pkg/logging"
	"github.com/honeycarbs/career-navigator/pkg/shutdown"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	res, cleanup, err := mcp.InitializeResources(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}

	srv := mcp.NewServer(logger, cfg, res)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		shutdown.Graceful(
			[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
			10*time.Second,
			logger,
			srv,
			shutdown.Func(cleanup),
		)
	}()

	logger.Info("MCP server initialized and starting",
		"addr", net.JoinHostPort(cfg.Host, cfg.Port),
		"tools", srv.Tools(),
		"predefined", len(res.Predefined),
	)

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
		cleanup()
		os.Exit(1)
	}
	<-stopped
	logger.Info("MCP server stopped")
}
