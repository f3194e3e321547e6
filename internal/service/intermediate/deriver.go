// Package intermediate derives the per-meal factors every strategy builds on.
package intermediate

import "github.com/KasumiMercury/primind-bolus-calculator/internal/domain"

const (
	// CarbsPerBE is the grams of carbohydrate in one BE.
	CarbsPerBE = 12.0

	// CaloriesPerBE is the calorie content of a pure-carbohydrate BE.
	CaloriesPerBE = 50.0

	leanBeCalories     = 100.0
	pureCarbBeCalories = 50.0
	calorieOffset      = 100.0
)

type Deriver struct{}

func NewDeriver() *Deriver {
	return &Deriver{}
}

// Derive computes the intermediate factors. Inputs are not range-checked;
// a usualBeCalories of -100 yields infinite factors.
func (d *Deriver) Derive(mealCarbs, mealCalories, usualBolusFactor, usualBeCalories float64) domain.IntermediateFactors {
	usualScale := usualBeCalories + calorieOffset

	beSum := mealCarbs / CarbsPerBE

	var beCalories float64
	if beSum != 0 {
		beCalories = mealCalories / beSum
	}

	return domain.IntermediateFactors{
		LeanBeFactor:       ((leanBeCalories + calorieOffset) / usualScale) * usualBolusFactor,
		PureCarbBeFactor:   ((pureCarbBeCalories + calorieOffset) / usualScale) * usualBolusFactor,
		BeSum:              beSum,
		BeCalories:         beCalories,
		FatProteinCalories: mealCalories - beSum*CaloriesPerBE,
	}
}
