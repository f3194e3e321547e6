// Package method classifies a meal and computes the bolus for the chosen strategy.
package method

import (
	"fmt"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
)

const (
	calorieOffset = 100.0

	// leanCaloriesPerUnit is the calorie amount one lean BE factor covers
	// when converting surplus calories into a delayed bolus.
	leanCaloriesPerUnit = 200.0

	pureCarbCaloriesPerBE = 50.0
)

// Calculate dispatches to the computation for strategy.
func Calculate(strategy domain.Strategy, in domain.MealInput, factors domain.IntermediateFactors) (domain.MethodResult, error) {
	switch strategy {
	case domain.StrategyCalorieSurplus:
		return CalorieSurplus(in, factors), nil
	case domain.StrategySupersize:
		return Supersize(in, factors), nil
	case domain.StrategyHighCarb:
		return HighCarb(in, factors), nil
	case domain.StrategyNoCarb:
		return NoCarb(in, factors), nil
	default:
		return domain.MethodResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, strategy)
	}
}

// scaledBeFactor rescales the usual bolus factor from the usual calories per
// BE to beCalories.
func scaledBeFactor(beCalories float64, in domain.MealInput) float64 {
	return ((beCalories + calorieOffset) / (in.UsualBeCalories + calorieOffset)) * in.UsualBolusFactor
}

func delayedBolus(calories float64, factors domain.IntermediateFactors) float64 {
	return (calories / leanCaloriesPerUnit) * factors.LeanBeFactor
}
