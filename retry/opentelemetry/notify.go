package opentelemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/LerianStudio/lib-retry/retry/opentelemetry"

// Metric names emitted by the notify hook.
const (
	MetricRetryAttempts   = "retry.attempts"
	MetricBackoffDuration = "retry.backoff.duration"
)

type config struct {
	provider metric.MeterProvider
}

// Option customizes the notify hook construction.
type Option func(*config)

// WithMeterProvider overrides the global MeterProvider.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(c *config) {
		if provider != nil {
			c.provider = provider
		}
	}
}

// NewNotify builds a retry notify hook that increments a retry counter and
// records the upcoming backoff delay in seconds.
func NewNotify(opts ...Option) (func(err error, next time.Duration), error) {
	cfg := config{provider: otel.GetMeterProvider()}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	meter := cfg.provider.Meter(instrumentationName)

	attempts, err := meter.Int64Counter(
		MetricRetryAttempts,
		metric.WithDescription("Number of retry sleeps performed."),
		metric.WithUnit("{retry}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", MetricRetryAttempts, err)
	}

	delays, err := meter.Float64Histogram(
		MetricBackoffDuration,
		metric.WithDescription("Backoff delay applied before each retry."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s histogram: %w", MetricBackoffDuration, err)
	}

	// The notify hook carries no context; recordings are not tied to a span.
	return func(_ error, next time.Duration) {
		ctx := context.Background()

		attempts.Add(ctx, 1)
		delays.Record(ctx, next.Seconds())
	}, nil
}
