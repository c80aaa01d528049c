package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/osa911/astrobooking/internal/config"
	"github.com/osa911/astrobooking/internal/logging"
	"github.com/osa911/astrobooking/internal/server"
	"github.com/osa911/astrobooking/internal/telemetry"
	"github.com/osa911/astrobooking/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Configure and get logger
	logging.Configure(cfg.Logging())
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode (%s)", cfg.Environment, version.Info())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	srv, err := server.NewServer(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to create server: %v", err)
		os.Exit(1)
	}

	if err := srv.Start(ctx); err != nil {
		logger.Error("Server stopped with error: %v", err)
		os.Exit(1)
	}
}
