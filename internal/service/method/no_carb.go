package method

import "github.com/KasumiMercury/primind-bolus-calculator/internal/domain"

// NoCarb doses a fat/protein meal only as a delayed bolus.
func NoCarb(in domain.MealInput, factors domain.IntermediateFactors) domain.MethodResult {
	return domain.MethodResult{
		DelayedCalorieBolus: delayedBolus(in.MealCalories, factors),
		FatProteinCalories:  factors.FatProteinCalories,
	}
}
