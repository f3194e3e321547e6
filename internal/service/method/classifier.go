package method

import (
	"fmt"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
)

const (
	// SupersizeBeThreshold is the BE count above which a meal can be supersize.
	// It is also the size of the covered portion in the supersize computation.
	SupersizeBeThreshold = 7.5

	// SupersizeFatProteinCaloriesThreshold is the fat/protein calorie count
	// above which a meal with more than SupersizeBeThreshold BE is supersize.
	SupersizeFatProteinCaloriesThreshold = 750.0

	// NoCarbThreshold is the carbohydrate amount (g) below which a meal is
	// treated as pure fat/protein.
	NoCarbThreshold = 3.0
)

type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify picks the strategy for a meal. Rules are evaluated in order and
// the first match wins: supersize, no-carb, high-carb, calorie surplus.
func (c *Classifier) Classify(mealCarbs, usualBeCalories float64, factors domain.IntermediateFactors) domain.StrategySelection {
	if factors.BeSum > SupersizeBeThreshold && factors.FatProteinCalories > SupersizeFatProteinCaloriesThreshold {
		return domain.StrategySelection{
			Strategy: domain.StrategySupersize,
			Explanation: fmt.Sprintf("supersize meal: BE %.2f > %.1f and fat/protein calories %.2f > %.0f kcal",
				factors.BeSum, SupersizeBeThreshold, factors.FatProteinCalories, SupersizeFatProteinCaloriesThreshold),
		}
	}

	if mealCarbs < NoCarbThreshold {
		return domain.StrategySelection{
			Strategy: domain.StrategyNoCarb,
			Explanation: fmt.Sprintf("pure fat/protein meal: carbs %.2fg < %.0fg",
				mealCarbs, NoCarbThreshold),
		}
	}

	if factors.BeCalories < usualBeCalories {
		return domain.StrategySelection{
			Strategy: domain.StrategyHighCarb,
			Explanation: fmt.Sprintf("high-carb meal: calories per BE %.2f < usual calories per BE %.2f",
				factors.BeCalories, usualBeCalories),
		}
	}

	return domain.StrategySelection{
		Strategy: domain.StrategyCalorieSurplus,
		Explanation: fmt.Sprintf("calorie surplus meal: calories per BE %.2f >= usual calories per BE %.2f",
			factors.BeCalories, usualBeCalories),
	}
}
