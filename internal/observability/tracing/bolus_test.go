package tracing

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
)

func TestRecordCalculationResult(t *testing.T) {
	tests := []struct {
		name        string
		strategy    domain.Strategy
		err         error
		wantDelayed bool
		wantStatus  codes.Code
	}{
		{name: "calorie surplus carries delayed bolus", strategy: domain.StrategyCalorieSurplus, wantDelayed: true, wantStatus: codes.Ok},
		{name: "supersize carries delayed bolus", strategy: domain.StrategySupersize, wantDelayed: true, wantStatus: codes.Ok},
		{name: "no carb carries delayed bolus", strategy: domain.StrategyNoCarb, wantDelayed: true, wantStatus: codes.Ok},
		{name: "high carb has no delayed bolus", strategy: domain.StrategyHighCarb, wantDelayed: false, wantStatus: codes.Ok},
		{name: "error sets status only", strategy: domain.StrategyNoCarb, err: errors.New("boom"), wantDelayed: false, wantStatus: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

			_, span := tp.Tracer("test").Start(context.Background(), "calculate")
			RecordCalculationResult(span, domain.StrategySelection{Strategy: tt.strategy}, 0.81, 3.2, 1.5, tt.err)
			span.End()

			ended := recorder.Ended()
			if len(ended) != 1 {
				t.Fatalf("got %d ended spans, want 1", len(ended))
			}

			attrs := attributeMap(ended[0].Attributes())
			if _, ok := attrs["bolus.delayed_calorie_bolus"]; ok != tt.wantDelayed {
				t.Errorf("delayed_calorie_bolus present = %v, want %v", ok, tt.wantDelayed)
			}
			if ended[0].Status().Code != tt.wantStatus {
				t.Errorf("status = %v, want %v", ended[0].Status().Code, tt.wantStatus)
			}
			if tt.err == nil && attrs["bolus.strategy"].AsString() != tt.strategy.String() {
				t.Errorf("strategy = %q, want %q", attrs["bolus.strategy"].AsString(), tt.strategy)
			}
		})
	}
}

func attributeMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}
