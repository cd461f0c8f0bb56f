package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// sink is where spans and metrics are exported.
type sink struct {
	kind     string
	out      io.Writer // stdout only
	host     string    // otlp only, host:port
	insecure bool
}

// parseSink checks the exporter settings once for both signals. An OTLP
// endpoint is a collector URL such as "http://otel-collector:4318"; plain
// http turns TLS off.
func parseSink(kind, endpoint string, out io.Writer) (sink, error) {
	switch kind {
	case ExporterStdout:
		return sink{kind: kind, out: out}, nil
	case ExporterOTLP:
		if endpoint == "" {
			return sink{}, errors.New("telemetry: otlp exporter requires an endpoint")
		}
		u, err := url.Parse(endpoint)
		if err != nil || u.Host == "" {
			// A bare host:port.
			return sink{kind: kind, host: endpoint, insecure: true}, nil
		}
		return sink{kind: kind, host: u.Host, insecure: u.Scheme != "https"}, nil
	default:
		return sink{}, fmt.Errorf("telemetry: unsupported exporter %q", kind)
	}
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
}

func newTracerProvider(ctx context.Context, res *resource.Resource, dst sink) (*sdktrace.TracerProvider, error) {
	var (
		exp sdktrace.SpanExporter
		err error
	)
	if dst.kind == ExporterStdout {
		exp, err = stdouttrace.New(stdouttrace.WithWriter(dst.out), stdouttrace.WithPrettyPrint())
	} else {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(dst.host)}
		if dst.insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exp, err = otlptracehttp.New(ctx, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("telemetry: %s span exporter: %w", dst.kind, err)
	}
	return sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res)), nil
}

func newMeterProvider(ctx context.Context, res *resource.Resource, dst sink) (*sdkmetric.MeterProvider, error) {
	var (
		exp sdkmetric.Exporter
		err error
	)
	if dst.kind == ExporterStdout {
		exp, err = stdoutmetric.New(stdoutmetric.WithWriter(dst.out))
	} else {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(dst.host)}
		if dst.insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exp, err = otlpmetrichttp.New(ctx, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("telemetry: %s metric exporter: %w", dst.kind, err)
	}
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	), nil
}
