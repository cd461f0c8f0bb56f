// Package telemetry wires OpenTelemetry tracing and metrics for the form
// server and formctl. Setup installs global providers from config and builds
// the instruments the rest of the code records on:
//
//	p, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer p.Shutdown(ctx)
//	svc := app.NewRegistrationService(opts, sched, p.Metrics, logger)
//
// A nil *Metrics is valid everywhere and records nothing.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/config"
)

// Exporter names accepted in config.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
)

// Values of AttrResult shared by server and client metrics.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Providers holds what Setup installed. Every field is nil when telemetry is
// disabled.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Option customises Setup.
type Option func(*setupOptions)

type setupOptions struct {
	out io.Writer
}

// WithWriter sends stdout exporter output to w instead of os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *setupOptions) { o.out = w }
}

// Setup installs global tracer and meter providers and the W3C propagators
// as described by cfg.
func Setup(ctx context.Context, cfg config.TelemetryConfig, opts ...Option) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	o := setupOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	dst, err := parseSink(cfg.Exporter, cfg.Endpoint, o.out)
	if err != nil {
		return nil, err
	}
	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}

	p := &Providers{}
	if p.Tracer, err = newTracerProvider(ctx, res, dst); err != nil {
		return nil, err
	}
	if p.Meter, err = newMeterProvider(ctx, res, dst); err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}
	if p.Metrics, err = NewMetrics(p.Meter, cfg.ServiceName); err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops both providers. Safe on nil and empty
// Providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}
