package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=calculation_recorder.go -destination=mock_calculation_recorder.go -package=domain

// CalculationRecord is the flattened log entry for one stored calculation.
type CalculationRecord struct {
	ID           string
	CalculatedAt time.Time

	MealCarbs                  float64
	MealCalories               float64
	UsualBeCalories            float64
	InsulinTypeCalorieCovering float64
	CurrentHour                int
	CurrentMinute              int
	UsualBolusFactor           float64

	Intermediate IntermediateFactors
	Strategy     Strategy
	Explanation  string
	Result       MethodResult

	MovementFactor    float64
	FinalCorrectBolus float64
}

type CalculationRecorder interface {
	// Enabled reports whether records are persisted anywhere.
	Enabled() bool
	RecordCalculation(ctx context.Context, record CalculationRecord) error
	Flush(ctx context.Context) error
	Close() error
}
