package method

import "github.com/KasumiMercury/primind-bolus-calculator/internal/domain"

// HighCarb doses a carb-dominant meal entirely up front.
func HighCarb(in domain.MealInput, factors domain.IntermediateFactors) domain.MethodResult {
	correctBeFactor := scaledBeFactor(factors.BeCalories, in)

	return domain.MethodResult{
		CorrectBeFactor:    correctBeFactor,
		CorrectBolusSum:    correctBeFactor * factors.BeSum,
		FatProteinCalories: factors.FatProteinCalories,
	}
}
