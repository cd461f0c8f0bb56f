package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http"
	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http/handlers"
	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http/middleware"
	"github.com/OliveiraRafael10/automacao-formulario/internal/app"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/config"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/health"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/telemetry"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/timer"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

// registerDependencies declares the object graph. Providers are lazy; the
// graph is built when the server is first invoked.
func registerDependencies(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*timer.Scheduler, error) {
		return timer.New(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.RegistrationService, error) {
		return app.NewRegistrationService(app.Options{
			NoticeDuration: cfg.Form.SuccessNoticeDuration,
			SessionTTL:     cfg.Form.SessionTTL,
			MaxSessions:    cfg.Form.MaxSessions,
		}, do.MustInvoke[*timer.Scheduler](i), do.MustInvoke[*telemetry.Metrics](i), logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.RegistrationService, error) {
		return do.MustInvoke[*app.RegistrationService](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.FormHandler, error) {
		return handlers.NewFormHandler(do.MustInvoke[ports.RegistrationService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PhoneHandler, error) {
		return handlers.NewPhoneHandler(do.MustInvoke[ports.RegistrationService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.FormHandler](i),
			do.MustInvoke[*handlers.PhoneHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
