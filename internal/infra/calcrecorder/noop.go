package calcrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.CalculationRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) Enabled() bool {
	return false
}

func (n *noopRecorder) RecordCalculation(_ context.Context, _ domain.CalculationRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
