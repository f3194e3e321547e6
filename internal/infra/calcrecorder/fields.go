package calcrecorder

import (
	"fmt"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
)

const measurementName = "bolus_calculation"

func validateRecord(record domain.CalculationRecord) error {
	if record.ID == "" {
		return fmt.Errorf("%w: calculation id is empty", domain.ErrInvalidInput)
	}
	if !record.Strategy.IsValid() {
		return fmt.Errorf("calculation %s: %w: %q", record.ID, domain.ErrUnknownStrategy, record.Strategy)
	}
	return nil
}

func recordTags(record domain.CalculationRecord) map[string]string {
	return map[string]string{
		"calculation_id": record.ID,
		"strategy":       record.Strategy.String(),
	}
}

func recordFields(record domain.CalculationRecord) map[string]any {
	return map[string]any{
		"meal_carbs":                    record.MealCarbs,
		"meal_calories":                 record.MealCalories,
		"usual_be_calories":             record.UsualBeCalories,
		"insulin_type_calorie_covering": record.InsulinTypeCalorieCovering,
		"current_hour":                  int64(record.CurrentHour),
		"current_minute":                int64(record.CurrentMinute),
		"usual_bolus_factor":            record.UsualBolusFactor,
		"lean_be_factor":                record.Intermediate.LeanBeFactor,
		"pure_carb_be_factor":           record.Intermediate.PureCarbBeFactor,
		"be_sum":                        record.Intermediate.BeSum,
		"be_calories":                   record.Intermediate.BeCalories,
		"fat_protein_calories":          record.Intermediate.FatProteinCalories,
		"correct_be_factor":             record.Result.CorrectBeFactor,
		"calorie_surplus":               record.Result.CalorieSurplus,
		"delayed_calorie_bolus":         record.Result.DelayedCalorieBolus,
		"correct_bolus_sum":             record.Result.CorrectBolusSum,
		"movement_factor":               record.MovementFactor,
		"final_correct_bolus":           record.FinalCorrectBolus,
		"explanation":                   record.Explanation,
	}
}
