package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments — replaced with real ones by InitMetrics().
var (
	calcCounter        metric.Int64Counter     = noop.Int64Counter{}
	calcHistogram      metric.Float64Histogram = noop.Float64Histogram{}
	perPersonHistogram metric.Float64Histogram = noop.Float64Histogram{}
	errorCounter       metric.Int64Counter     = noop.Int64Counter{}
)

// InitMetrics registers the tip calculator's metric instruments.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("tip")

	var err error

	calcCounter, err = meter.Int64Counter("tip.calculations.total",
		metric.WithDescription("Total number of tip calculations performed"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("tip.calculation.duration",
		metric.WithDescription("Duration of tip calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	perPersonHistogram, err = meter.Float64Histogram("tip.per_person.amount",
		metric.WithDescription("Per-person share of calculated bills"),
		metric.WithUnit("1"),
		metric.WithExplicitBucketBoundaries(5, 10, 20, 50, 100, 250, 500, 1000),
	)
	if err != nil {
		return fmt.Errorf("creating per-person histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("tip.errors.total",
		metric.WithDescription("Total number of rejected tip requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
