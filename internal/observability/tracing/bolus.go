package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
)

const bolusTracerName = "github.com/KasumiMercury/primind-bolus-calculator/internal/service/bolus"

func BolusTracer() trace.Tracer {
	return otel.Tracer(bolusTracerName)
}

func StartCalculationSpan(ctx context.Context, hour, minute, windowMinutes int) (context.Context, trace.Span) {
	return BolusTracer().Start(ctx, "bolus.calculate",
		trace.WithAttributes(
			attribute.Int("bolus.start_hour", hour),
			attribute.Int("bolus.start_minute", minute),
			attribute.Int("bolus.window_minutes", windowMinutes),
		),
	)
}

func StartFactorLoadSpan(ctx context.Context) (context.Context, trace.Span) {
	return BolusTracer().Start(ctx, "bolus.factor_table.load",
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartRecordSpan(ctx context.Context, calculationID string) (context.Context, trace.Span) {
	return BolusTracer().Start(ctx, "bolus.record",
		trace.WithAttributes(
			attribute.String("calculation_id", calculationID),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartRedisOperationSpan(ctx context.Context, operation, key string) (context.Context, trace.Span) {
	return BolusTracer().Start(ctx, "bolus.redis."+operation,
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", operation),
			attribute.String("db.key", key),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordFactorLoadResult(span trace.Span, storedHours int, usedFallback bool, err error) {
	span.SetAttributes(
		attribute.Int("factor_table.stored_hours", storedHours),
		attribute.Bool("factor_table.used_fallback", usedFallback),
	)
	recordStatus(span, err)
}

func RecordCalculationResult(span trace.Span, selection domain.StrategySelection, usualBolusFactor, finalBolus, delayedBolus float64, err error) {
	if err == nil {
		span.SetAttributes(
			attribute.String("bolus.strategy", selection.Strategy.String()),
			attribute.Float64("bolus.usual_factor", usualBolusFactor),
			attribute.Float64("bolus.final_correct_bolus", finalBolus),
		)
		if selection.Strategy.HasDelayedBolus() {
			span.SetAttributes(attribute.Float64("bolus.delayed_calorie_bolus", delayedBolus))
		}
	}
	recordStatus(span, err)
}

func RecordError(span trace.Span, err error) {
	recordStatus(span, err)
}

func recordStatus(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
