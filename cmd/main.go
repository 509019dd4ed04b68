package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/CartwiseCo/grocery-service/config"
	"github.com/CartwiseCo/grocery-service/internal/infra/postgres"
	"github.com/CartwiseCo/grocery-service/internal/infra/server"
	"github.com/CartwiseCo/grocery-service/pkg/logger"
)

func main() {
	mainContext := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defaultLogger := logger.NewLogger(&cfg)
	slog.SetDefault(defaultLogger)

	conn, err := postgres.Init(cfg)
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := server.New(mainContext, &cfg, conn)
	if srv == nil {
		slog.Error("failed to initialize server")
		os.Exit(1)
	}

	// Switch to the OTLP-exporting logger once telemetry is up. Failure is
	// non-fatal; the local logger keeps working.
	if observableLogger, loggerProvider, err := logger.NewObservableLogger(&cfg); err != nil {
		slog.Warn("failed to initialize observable logger", slog.String("error", err.Error()))
	} else {
		slog.SetDefault(observableLogger)
		srv.SetLoggerProvider(loggerProvider)
	}

	srv.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	srv.Shutdown()
}
