package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/league-graphql/internal/app"
	"github.com/riskibarqy/league-graphql/internal/config"
	"github.com/riskibarqy/league-graphql/internal/observability"
	"github.com/riskibarqy/league-graphql/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	pprofSrv := observability.StartPprofServer(cfg, logger)

	srv, err := app.NewHTTPServer(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "graphiql_enabled", cfg.GraphiQLEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exitCode := 0
	select {
	case <-ctx.Done():
	case err, ok := <-serveErr:
		if ok {
			logger.Error("http server failed", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		exitCode = 1
	}

	err = app.Shutdown(shutdownCtx, logger,
		app.ShutdownHook{Name: "pprof", Fn: func(ctx context.Context) error {
			return observability.StopPprofServer(ctx, pprofSrv, logger)
		}},
		app.ShutdownHook{Name: "pyroscope", Fn: func(context.Context) error {
			return stopPyroscope()
		}},
		app.ShutdownHook{Name: "uptrace", Fn: shutdownUptrace},
	)
	if err != nil {
		exitCode = 1
	}

	logger.Info("http server stopped")
	if exitCode != 0 {
		cancel()
		_ = logger.Sync()
		os.Exit(exitCode)
	}
}
