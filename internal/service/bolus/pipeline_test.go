package bolus

import (
	"errors"
	"math"
	"testing"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func uniformTable(f float64) domain.HourlyFactorTable {
	table := make(domain.HourlyFactorTable, domain.HoursPerDay)
	for h := 0; h < domain.HoursPerDay; h++ {
		table[h] = f
	}
	return table
}

func TestPipelineRun_Strategies(t *testing.T) {
	p := NewPipeline(120)

	tests := []struct {
		name         string
		req          Request
		wantStrategy domain.Strategy
		wantBolusSum float64
		wantDelayed  float64
		wantFinal    float64
	}{
		{
			name: "high carb",
			req: Request{
				MealCarbs: 60, MealCalories: 400, UsualBeCalories: float64Ptr(100),
				InsulinTypeCalorieCovering: float64Ptr(200), CurrentHour: 8, MovementFactor: 1.0,
			},
			wantStrategy: domain.StrategyHighCarb,
			// beCalories 80: (180/200) * 5
			wantBolusSum: 4.5,
			wantFinal:    4.5,
		},
		{
			name: "no carb halves with movement factor",
			req: Request{
				MealCarbs: 0, MealCalories: 400, UsualBeCalories: float64Ptr(100),
				InsulinTypeCalorieCovering: float64Ptr(200), CurrentHour: 8, MovementFactor: 0.5,
			},
			wantStrategy: domain.StrategyNoCarb,
			wantBolusSum: 0,
			wantDelayed:  2,
			wantFinal:    0,
		},
		{
			name: "calorie surplus",
			req: Request{
				MealCarbs: 24, MealCalories: 400, UsualBeCalories: float64Ptr(100),
				InsulinTypeCalorieCovering: float64Ptr(200), CurrentHour: 8, MovementFactor: 1.0,
			},
			wantStrategy: domain.StrategyCalorieSurplus,
		},
		{
			name: "supersize",
			req: Request{
				MealCarbs: 120, MealCalories: 1400, UsualBeCalories: float64Ptr(100),
				InsulinTypeCalorieCovering: float64Ptr(200), CurrentHour: 8, MovementFactor: 1.0,
			},
			wantStrategy: domain.StrategySupersize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Run(tt.req, uniformTable(1.0))
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if result.UsualBolusFactor != 1.0 {
				t.Errorf("UsualBolusFactor = %v, want 1.0", result.UsualBolusFactor)
			}
			if result.Selection.Strategy != tt.wantStrategy {
				t.Errorf("Strategy = %v, want %v", result.Selection.Strategy, tt.wantStrategy)
			}
			if result.Selection.Explanation == "" {
				t.Error("Explanation is empty")
			}
			if result.UsedFallbackTable {
				t.Error("UsedFallbackTable = true, want false for a complete table")
			}
			if result.FinalCorrectBolus != result.Method.CorrectBolusSum*tt.req.MovementFactor {
				t.Errorf("FinalCorrectBolus = %v, want %v", result.FinalCorrectBolus, result.Method.CorrectBolusSum*tt.req.MovementFactor)
			}

			if tt.wantStrategy == domain.StrategyHighCarb || tt.wantStrategy == domain.StrategyNoCarb {
				if math.Abs(result.Method.CorrectBolusSum-tt.wantBolusSum) > 1e-12 {
					t.Errorf("CorrectBolusSum = %v, want %v", result.Method.CorrectBolusSum, tt.wantBolusSum)
				}
				if math.Abs(result.Method.DelayedCalorieBolus-tt.wantDelayed) > 1e-12 {
					t.Errorf("DelayedCalorieBolus = %v, want %v", result.Method.DelayedCalorieBolus, tt.wantDelayed)
				}
				if math.Abs(result.FinalCorrectBolus-tt.wantFinal) > 1e-12 {
					t.Errorf("FinalCorrectBolus = %v, want %v", result.FinalCorrectBolus, tt.wantFinal)
				}
			}
		})
	}
}

func TestPipelineRun_Invalid(t *testing.T) {
	p := NewPipeline(120)

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "degenerate usual BE calories",
			req:     Request{MealCarbs: 60, MealCalories: 400, UsualBeCalories: float64Ptr(-100), InsulinTypeCalorieCovering: float64Ptr(200)},
			wantErr: domain.ErrDegenerateUsualBeCalories,
		},
		{
			name:    "non-positive calorie covering",
			req:     Request{MealCarbs: 60, MealCalories: 400, UsualBeCalories: float64Ptr(105), InsulinTypeCalorieCovering: float64Ptr(-1)},
			wantErr: domain.ErrInvalidCalorieFactors,
		},
		{
			name:    "hour out of range",
			req:     Request{MealCarbs: 60, MealCalories: 400, UsualBeCalories: float64Ptr(105), InsulinTypeCalorieCovering: float64Ptr(200), CurrentHour: 24},
			wantErr: domain.ErrInvalidHour,
		},
		{
			name:    "minute out of range",
			req:     Request{MealCarbs: 60, MealCalories: 400, UsualBeCalories: float64Ptr(105), InsulinTypeCalorieCovering: float64Ptr(200), CurrentMinute: 60},
			wantErr: domain.ErrInvalidMinute,
		},
		{
			name:    "unresolved calorie factors",
			req:     Request{MealCarbs: 60, MealCalories: 400},
			wantErr: domain.ErrInvalidCalorieFactors,
		},
		{
			name:    "calories per BE overflow",
			req:     Request{MealCarbs: 6, MealCalories: 1e308, UsualBeCalories: float64Ptr(105), InsulinTypeCalorieCovering: float64Ptr(200), MovementFactor: 1},
			wantErr: domain.ErrNonFiniteResult,
		},
		{
			name:    "movement factor overflow",
			req:     Request{MealCarbs: 60, MealCalories: 400, UsualBeCalories: float64Ptr(105), InsulinTypeCalorieCovering: float64Ptr(200), MovementFactor: 1e308},
			wantErr: domain.ErrNonFiniteResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Run(tt.req, nil)
			if result != nil {
				t.Errorf("Run() result = %+v, want nil", result)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("Run() error = %v, want wrapped ErrInvalidInput", err)
			}
		})
	}
}

func TestPipelineRun_ZeroUsualBeCalories(t *testing.T) {
	req := Request{
		MealCarbs:                  60,
		MealCalories:               400,
		UsualBeCalories:            float64Ptr(0),
		InsulinTypeCalorieCovering: float64Ptr(200),
		CurrentHour:                8,
		MovementFactor:             1.0,
	}

	result, err := NewPipeline(120).Run(req, uniformTable(1.0))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.UsualBeCalories != 0 {
		t.Errorf("UsualBeCalories = %v, want 0", result.UsualBeCalories)
	}
	// 80 calories per BE against a usual 0: (180/100) * 5
	if math.Abs(result.Method.CorrectBolusSum-9) > 1e-12 {
		t.Errorf("CorrectBolusSum = %v, want 9", result.Method.CorrectBolusSum)
	}
}

func TestNewPipeline_DefaultWindow(t *testing.T) {
	if got := NewPipeline(0).WindowMinutes(); got != 120 {
		t.Errorf("WindowMinutes() = %d, want 120", got)
	}
	if got := NewPipeline(90).WindowMinutes(); got != 90 {
		t.Errorf("WindowMinutes() = %d, want 90", got)
	}
}
