package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	bolusMeterName = "bolus.service"
)

type BolusMetrics struct {
	calculations        metric.Int64Counter
	factorTableFallback metric.Int64Counter
	calculationDuration metric.Float64Histogram
	finalBolus          metric.Float64Histogram
	recordings          metric.Int64Counter
}

func NewBolusMetrics() (*BolusMetrics, error) {
	meter := otel.Meter(bolusMeterName)

	calculations, err := meter.Int64Counter(
		"bolus_calculations_total",
		metric.WithDescription("Total number of bolus calculations by strategy and outcome"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return nil, err
	}

	factorTableFallback, err := meter.Int64Counter(
		"bolus_factor_table_fallback_total",
		metric.WithDescription("Calculations that used the compiled-in hourly factor table"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return nil, err
	}

	calculationDuration, err := meter.Float64Histogram(
		"bolus_calculation_duration_seconds",
		metric.WithDescription("Time spent in a bolus calculation including the factor table load"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	finalBolus, err := meter.Float64Histogram(
		"bolus_final_correct_bolus_units",
		metric.WithDescription("Distribution of the movement-adjusted immediate bolus"),
		metric.WithUnit("{unit}"),
		metric.WithExplicitBucketBoundaries(
			0, 0.5, 1, 2, 4, 6, 8, 10, 15, 20, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	recordings, err := meter.Int64Counter(
		"bolus_recordings_total",
		metric.WithDescription("Calculation records forwarded to the result recorder"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	return &BolusMetrics{
		calculations:        calculations,
		factorTableFallback: factorTableFallback,
		calculationDuration: calculationDuration,
		finalBolus:          finalBolus,
		recordings:          recordings,
	}, nil
}

func (m *BolusMetrics) RecordCalculation(ctx context.Context, strategy, outcome string) {
	m.calculations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("strategy", strategy),
		attribute.String("outcome", outcome),
	))
}

func (m *BolusMetrics) RecordFactorTableFallback(ctx context.Context, reason string) {
	m.factorTableFallback.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

func (m *BolusMetrics) RecordCalculationDuration(ctx context.Context, duration time.Duration) {
	m.calculationDuration.Record(ctx, duration.Seconds())
}

func (m *BolusMetrics) RecordFinalBolus(ctx context.Context, strategy string, units float64) {
	m.finalBolus.Record(ctx, units, metric.WithAttributes(
		attribute.String("strategy", strategy),
	))
}

func (m *BolusMetrics) RecordRecording(ctx context.Context, outcome string) {
	m.recordings.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
