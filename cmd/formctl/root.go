package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/clients/formapi"
	"github.com/OliveiraRafael10/automacao-formulario/internal/app"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/config"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/httpclient"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/logging"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/telemetry"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/timer"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

const (
	remoteServiceName     = "form-api"
	userAgent             = "formctl"
	telemetryFlushTimeout = 5 * time.Second
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	profile   string
	configDir string
	server    string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "formctl",
		Short: "Drive the registration form from the command line",
		Long: `formctl drives the registration form without a browser.

By default the form runs in-process. With --server every event is sent to a
running form server over HTTP instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	profile, _ := config.ProfileFromEnv("local")

	cmd.PersistentFlags().StringVar(&flags.profile, "profile", profile, "config profile (env APP_PROFILE)")
	cmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "configs", "directory holding the config YAML files")
	cmd.PersistentFlags().StringVar(&flags.server, "server", "", "base URL of a form server (e.g. http://localhost:8080)")

	cmd.AddCommand(
		newMaskCmd(flags),
		newRunCmd(flags),
		newTUICmd(flags),
	)
	return cmd
}

// env is what a subcommand needs to talk to a registration service.
type env struct {
	cfg       *config.Config
	logger    *slog.Logger
	svc       ports.RegistrationService
	telemetry *telemetry.Providers
}

// close flushes telemetry. Errors are logged, not returned, so they never
// mask the command's own result.
func (e *env) close() {
	ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
	defer cancel()

	if err := e.telemetry.Shutdown(ctx); err != nil {
		e.logger.Warn("telemetry shutdown error", slog.Any("error", err))
	}
}

// setup loads config and builds the service selected by --server. Remote
// servers must pass a liveness probe before any form is opened. Callers
// must close the returned env.
func setup(ctx context.Context, cmd *cobra.Command, flags *globalFlags) (*env, error) {
	opts := []config.Option{config.WithConfigDir(flags.configDir)}
	if flags.server != "" {
		opts = append(opts, config.WithOverrides(map[string]any{"client.base_url": flags.server}))
	}
	cfg, err := config.Load(flags.profile, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	otel, err := telemetry.Setup(ctx, cfg.Telemetry, telemetry.WithWriter(cmd.ErrOrStderr()))
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}
	e := &env{cfg: cfg, logger: logger, telemetry: otel}

	if flags.server == "" {
		svc, err := app.NewRegistrationService(app.Options{
			NoticeDuration: cfg.Form.SuccessNoticeDuration,
			SessionTTL:     cfg.Form.SessionTTL,
			MaxSessions:    cfg.Form.MaxSessions,
		}, timer.New(logger), otel.Metrics, logger)
		if err != nil {
			e.close()
			return nil, fmt.Errorf("creating form service: %w", err)
		}
		e.svc = svc
		return e, nil
	}

	hc := httpclient.New(&cfg.Client, remoteServiceName,
		httpclient.WithMetrics(otel.Metrics),
		httpclient.WithLogger(logger),
		httpclient.WithUserAgent(userAgent),
	)
	client := formapi.New(hc, logger)
	if err := client.HealthCheck(ctx); err != nil {
		e.close()
		return nil, fmt.Errorf("form server %s: %w", cfg.Client.BaseURL, err)
	}
	logger.DebugContext(ctx, "form server reachable", slog.String("server", cfg.Client.BaseURL))

	e.svc = client
	return e, nil
}
