// Package main is the entry point for the form server. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http"
	"github.com/OliveiraRafael10/automacao-formulario/internal/app"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/config"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/logging"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/telemetry"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/timer"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile, err := config.ProfileFromEnv("")
	if err != nil {
		return err
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	registerDependencies(injector, cfg, logger)

	// Resolving the server wires the whole graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*app.RegistrationService](injector))

	if err := server.Listen(); err != nil {
		return fmt.Errorf("binding listener: %w", err)
	}
	logger.Info("form server ready",
		slog.String("profile", profile),
		slog.String("addr", server.Addr()),
		slog.Duration("success_notice", cfg.Form.SuccessNoticeDuration),
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	// Pending resets only touch in-memory sessions, which die with the process.
	if n := do.MustInvoke[*timer.Scheduler](injector).Pending(); n > 0 {
		logger.Info("dropping pending form resets", slog.Int("pending", n))
	}

	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}
