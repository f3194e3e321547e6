package method

import "github.com/KasumiMercury/primind-bolus-calculator/internal/domain"

// Supersize splits a large meal into a covered portion of
// SupersizeBeThreshold BE and an overhanging remainder dosed as pure carbs.
// The covered portion's excess calories go into a delayed bolus.
func Supersize(in domain.MealInput, factors domain.IntermediateFactors) domain.MethodResult {
	covered := factors.BeCalories
	if factors.BeCalories > in.InsulinTypeCalorieCovering {
		covered = in.InsulinTypeCalorieCovering
	}

	overhangingBe := factors.BeSum - SupersizeBeThreshold

	correctBeFactor := scaledBeFactor(covered, in)
	calorieSurplus := (in.MealCalories - covered*SupersizeBeThreshold) - overhangingBe*pureCarbCaloriesPerBE

	return domain.MethodResult{
		CorrectBeFactor:     correctBeFactor,
		CalorieSurplus:      calorieSurplus,
		DelayedCalorieBolus: delayedBolus(calorieSurplus, factors),
		CorrectBolusSum:     correctBeFactor*SupersizeBeThreshold + overhangingBe*factors.PureCarbBeFactor,
		FatProteinCalories:  factors.FatProteinCalories,
	}
}
