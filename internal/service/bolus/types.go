package bolus

import "github.com/KasumiMercury/primind-bolus-calculator/internal/domain"

type StorageStatus string

const (
	StorageDisabled     StorageStatus = "disabled"
	StorageStored       StorageStatus = "stored"
	StorageFailed       StorageStatus = "failed"
	StorageUnauthorized StorageStatus = "unauthorized"
)

func (s StorageStatus) String() string {
	return string(s)
}

// Request carries the meal and context inputs of one calculation.
// Nil calorie factors are resolved from the stored factors and then the configured defaults.
type Request struct {
	MealCarbs                  float64
	MealCalories               float64
	UsualBeCalories            *float64
	InsulinTypeCalorieCovering *float64
	CurrentHour                int
	CurrentMinute              int
	MovementFactor             float64
	Record                     bool
}

type Result struct {
	CalculationID string

	MealCarbs                  float64
	MealCalories               float64
	UsualBeCalories            float64
	InsulinTypeCalorieCovering float64
	CurrentHour                int
	CurrentMinute              int

	UsualBolusFactor  float64
	UsedFallbackTable bool

	Intermediate domain.IntermediateFactors
	Selection    domain.StrategySelection
	Method       domain.MethodResult

	MovementFactor    float64
	FinalCorrectBolus float64

	StorageStatus StorageStatus
}

// Settings holds the averaging window and the calorie factors used when a
// request omits them and nothing is stored.
type Settings struct {
	WindowMinutes              int
	UsualBeCalories            float64
	InsulinTypeCalorieCovering float64
}

func DefaultSettings() Settings {
	return Settings{
		WindowMinutes:              120,
		UsualBeCalories:            105,
		InsulinTypeCalorieCovering: 200,
	}
}
