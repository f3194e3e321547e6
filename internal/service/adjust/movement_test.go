package adjust

import (
	"testing"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
)

func TestApply(t *testing.T) {
	result := domain.MethodResult{
		CorrectBolusSum:     4.5,
		DelayedCalorieBolus: 2.0,
	}

	tests := []struct {
		name           string
		movementFactor float64
		want           float64
	}{
		{name: "neutral factor keeps the bolus", movementFactor: NeutralMovementFactor, want: 4.5},
		{name: "zero factor cancels the bolus", movementFactor: 0, want: 0},
		{name: "reduced for exercise", movementFactor: 0.5, want: 2.25},
		{name: "increased for inactivity", movementFactor: 2, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(result, tt.movementFactor); got != tt.want {
				t.Errorf("Apply(%v) = %v, want %v", tt.movementFactor, got, tt.want)
			}
		})
	}
}

func TestApply_IsLinear(t *testing.T) {
	result := domain.MethodResult{CorrectBolusSum: 3.0}

	a, b := 0.75, 1.5
	if got, want := Apply(result, a+b), Apply(result, a)+Apply(result, b); got != want {
		t.Errorf("Apply(a+b) = %v, want Apply(a)+Apply(b) = %v", got, want)
	}
	if got, want := Apply(result, 4*a), 4*Apply(result, a); got != want {
		t.Errorf("Apply(4a) = %v, want 4*Apply(a) = %v", got, want)
	}
}

func TestApply_IgnoresDelayedBolus(t *testing.T) {
	withDelay := domain.MethodResult{CorrectBolusSum: 1.0, DelayedCalorieBolus: 10}
	withoutDelay := domain.MethodResult{CorrectBolusSum: 1.0}

	if Apply(withDelay, 0.8) != Apply(withoutDelay, 0.8) {
		t.Errorf("Apply() depends on DelayedCalorieBolus")
	}
}
