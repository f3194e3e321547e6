package method

import "github.com/KasumiMercury/primind-bolus-calculator/internal/domain"

// CalorieSurplus covers the meal's calories per BE up to the insulin type's
// calorie covering. Calories beyond that ceiling go into a delayed bolus.
func CalorieSurplus(in domain.MealInput, factors domain.IntermediateFactors) domain.MethodResult {
	result := domain.MethodResult{FatProteinCalories: factors.FatProteinCalories}

	if factors.BeCalories <= in.InsulinTypeCalorieCovering {
		result.CorrectBeFactor = scaledBeFactor(factors.BeCalories, in)
		result.CorrectBolusSum = result.CorrectBeFactor * factors.BeSum
		return result
	}

	result.CorrectBeFactor = scaledBeFactor(in.InsulinTypeCalorieCovering, in)
	result.CalorieSurplus = in.MealCalories - in.InsulinTypeCalorieCovering*factors.BeSum
	result.DelayedCalorieBolus = delayedBolus(result.CalorieSurplus, factors)
	result.CorrectBolusSum = result.CorrectBeFactor * factors.BeSum

	return result
}
