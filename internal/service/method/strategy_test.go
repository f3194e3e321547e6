package method

import (
	"errors"
	"math"
	"testing"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/service/intermediate"
)

const epsilon = 1e-9

// newMeal builds a meal with a usual bolus factor of 1.0 and 100 usual
// calories per BE, so every scaled factor is (calories+100)/200.
func newMeal(mealCarbs, mealCalories, covering float64) (domain.MealInput, domain.IntermediateFactors) {
	in := domain.MealInput{
		MealCarbs:                  mealCarbs,
		MealCalories:               mealCalories,
		UsualBolusFactor:           1.0,
		UsualBeCalories:            100,
		InsulinTypeCalorieCovering: covering,
	}
	factors := intermediate.NewDeriver().Derive(mealCarbs, mealCalories, in.UsualBolusFactor, in.UsualBeCalories)
	return in, factors
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		strategy     domain.Strategy
		mealCarbs    float64
		mealCalories float64
		covering     float64
		want         domain.MethodResult
	}{
		{
			name:         "calorie surplus within covering",
			strategy:     domain.StrategyCalorieSurplus,
			mealCarbs:    60,
			mealCalories: 400,
			covering:     200,
			want: domain.MethodResult{
				CorrectBeFactor:    0.9,
				CorrectBolusSum:    4.5,
				FatProteinCalories: 150,
			},
		},
		{
			name:         "calorie surplus at covering stays up front",
			strategy:     domain.StrategyCalorieSurplus,
			mealCarbs:    24,
			mealCalories: 400,
			covering:     200,
			want: domain.MethodResult{
				CorrectBeFactor:    1.5,
				CorrectBolusSum:    3.0,
				FatProteinCalories: 300,
			},
		},
		{
			name:         "calorie surplus above covering delays the excess",
			strategy:     domain.StrategyCalorieSurplus,
			mealCarbs:    24,
			mealCalories: 600,
			covering:     200,
			want: domain.MethodResult{
				CorrectBeFactor:     1.5,
				CalorieSurplus:      200,
				DelayedCalorieBolus: 1.0,
				CorrectBolusSum:     3.0,
				FatProteinCalories:  500,
			},
		},
		{
			name:         "calorie surplus with lower covering preset",
			strategy:     domain.StrategyCalorieSurplus,
			mealCarbs:    24,
			mealCalories: 600,
			covering:     150,
			want: domain.MethodResult{
				CorrectBeFactor:     1.25,
				CalorieSurplus:      300,
				DelayedCalorieBolus: 1.5,
				CorrectBolusSum:     2.5,
				FatProteinCalories:  500,
			},
		},
		{
			name:         "supersize within covering",
			strategy:     domain.StrategySupersize,
			mealCarbs:    120,
			mealCalories: 1500,
			covering:     200,
			want: domain.MethodResult{
				CorrectBeFactor:     1.25,
				CalorieSurplus:      250,
				DelayedCalorieBolus: 1.25,
				CorrectBolusSum:     11.25,
				FatProteinCalories:  1000,
			},
		},
		{
			name:         "supersize above covering",
			strategy:     domain.StrategySupersize,
			mealCarbs:    108,
			mealCalories: 2700,
			covering:     200,
			want: domain.MethodResult{
				CorrectBeFactor:     1.5,
				CalorieSurplus:      1125,
				DelayedCalorieBolus: 5.625,
				CorrectBolusSum:     12.375,
				FatProteinCalories:  2250,
			},
		},
		{
			name:         "high-carb",
			strategy:     domain.StrategyHighCarb,
			mealCarbs:    60,
			mealCalories: 400,
			covering:     200,
			want: domain.MethodResult{
				CorrectBeFactor:    0.9,
				CorrectBolusSum:    4.5,
				FatProteinCalories: 150,
			},
		},
		{
			name:         "no-carb",
			strategy:     domain.StrategyNoCarb,
			mealCarbs:    0,
			mealCalories: 400,
			covering:     200,
			want: domain.MethodResult{
				DelayedCalorieBolus: 2.0,
				FatProteinCalories:  400,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, factors := newMeal(tt.mealCarbs, tt.mealCalories, tt.covering)

			got, err := Calculate(tt.strategy, in, factors)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			assertResult(t, got, tt.want)
		})
	}
}

func TestCalculate_UnknownStrategy(t *testing.T) {
	in, factors := newMeal(60, 400, 200)

	_, err := Calculate(domain.Strategy("rapid"), in, factors)
	if !errors.Is(err, domain.ErrUnknownStrategy) {
		t.Errorf("Calculate() error = %v, want ErrUnknownStrategy", err)
	}
}

func TestSupersize_CoveredPortionUsesUsualFactors(t *testing.T) {
	in := domain.MealInput{
		MealCarbs:                  96,
		MealCalories:               1200,
		UsualBolusFactor:           0.81,
		UsualBeCalories:            105,
		InsulinTypeCalorieCovering: 200,
	}
	factors := intermediate.NewDeriver().Derive(in.MealCarbs, in.MealCalories, in.UsualBolusFactor, in.UsualBeCalories)

	got := Supersize(in, factors)

	correctBeFactor := (250.0 / 205.0) * 0.81
	overhang := 0.5
	surplus := (1200 - 150*7.5) - overhang*50
	want := domain.MethodResult{
		CorrectBeFactor:     correctBeFactor,
		CalorieSurplus:      surplus,
		DelayedCalorieBolus: (surplus / 200) * factors.LeanBeFactor,
		CorrectBolusSum:     correctBeFactor*7.5 + overhang*factors.PureCarbBeFactor,
		FatProteinCalories:  800,
	}

	assertResult(t, got, want)
}

func TestStrategiesCopyFatProteinCalories(t *testing.T) {
	in, factors := newMeal(60, 700, 200)

	for _, s := range []domain.Strategy{
		domain.StrategyCalorieSurplus,
		domain.StrategySupersize,
		domain.StrategyHighCarb,
		domain.StrategyNoCarb,
	} {
		got, err := Calculate(s, in, factors)
		if err != nil {
			t.Fatalf("Calculate(%s) unexpected error: %v", s, err)
		}
		if got.FatProteinCalories != factors.FatProteinCalories {
			t.Errorf("Calculate(%s).FatProteinCalories = %v, want %v", s, got.FatProteinCalories, factors.FatProteinCalories)
		}
	}
}

func assertResult(t *testing.T, got, want domain.MethodResult) {
	t.Helper()

	fields := []struct {
		name      string
		got, want float64
	}{
		{"CorrectBeFactor", got.CorrectBeFactor, want.CorrectBeFactor},
		{"CalorieSurplus", got.CalorieSurplus, want.CalorieSurplus},
		{"DelayedCalorieBolus", got.DelayedCalorieBolus, want.DelayedCalorieBolus},
		{"CorrectBolusSum", got.CorrectBolusSum, want.CorrectBolusSum},
		{"FatProteinCalories", got.FatProteinCalories, want.FatProteinCalories},
	}
	for _, f := range fields {
		if math.Abs(f.got-f.want) > epsilon {
			t.Errorf("%s = %v, want %v", f.name, f.got, f.want)
		}
	}
}
