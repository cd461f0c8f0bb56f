package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// durationBuckets suit interactive form requests, in seconds.
var durationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Metrics holds the instruments recorded by the server, the outbound client
// and the registration service.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// FormSubmissionTotal counts submission attempts by result
	// (accepted or blocked).
	FormSubmissionTotal metric.Int64Counter
	// PhoneMaskTotal counts standalone phone mask requests.
	PhoneMaskTotal metric.Int64Counter
}

// NewMetrics registers every instrument on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	b := builder{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: b.seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    b.count("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.seconds("http.client.request.duration", "Duration of outgoing HTTP requests"),
		ClientRequestTotal:    b.count("http.client.request.total", "Outgoing HTTP requests", "{request}"),
		FormSubmissionTotal:   b.count("form.submission.total", "Form submission attempts", "{submission}"),
		PhoneMaskTotal:        b.count("form.phone_mask.total", "Standalone phone mask requests", "{request}"),
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// builder collects instrument errors so NewMetrics reports them together.
type builder struct {
	meter metric.Meter
	errs  []error
}

func (b *builder) count(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}

func (b *builder) seconds(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name,
		metric.WithDescription(desc),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}
