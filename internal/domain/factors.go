package domain

// HoursPerDay is the number of entries in a complete HourlyFactorTable.
const HoursPerDay = 24

// HourlyFactorTable maps hour-of-day (0-23) to a sensitivity factor.
// Missing hours are resolved against the fallback table by the averager.
type HourlyFactorTable map[int]float64

// Lookup returns the factor for hour, if present.
func (t HourlyFactorTable) Lookup(hour int) (float64, bool) {
	f, ok := t[hour]
	return f, ok
}

// IsComplete reports whether every hour of the day has an entry.
func (t HourlyFactorTable) IsComplete() bool {
	for h := 0; h < HoursPerDay; h++ {
		if _, ok := t[h]; !ok {
			return false
		}
	}
	return true
}

// HourlyFactor is a single (hour, factor) row as exposed to API clients.
type HourlyFactor struct {
	Hour        int     `json:"hour"`
	BolusFactor float64 `json:"bolusFactor"`
}

// CalorieFactors holds the per-user calorie constants.
type CalorieFactors struct {
	UsualBeCalories            float64 `json:"usualBeCalories"`
	InsulinTypeCalorieCovering float64 `json:"insulinTypeCalorieCovering"`
}

// IntermediateFactors are derived from the raw meal data and the
// time-averaged bolus factor.
type IntermediateFactors struct {
	LeanBeFactor       float64 `json:"leanBeFactor"`
	PureCarbBeFactor   float64 `json:"pureCarbBeFactor"`
	BeSum              float64 `json:"beSum"`
	BeCalories         float64 `json:"beCalories"`
	FatProteinCalories float64 `json:"fatProteinCalories"`
}

// MethodResult is the output of a single strategy computation.
type MethodResult struct {
	CorrectBeFactor     float64 `json:"correctBeFactor"`
	CalorieSurplus      float64 `json:"calorieSurplus"`
	DelayedCalorieBolus float64 `json:"delayedCalorieBolus"` // extended over the following hours
	CorrectBolusSum     float64 `json:"correctBolusSum"`
	FatProteinCalories  float64 `json:"fatProteinCalories"`
}

// MealInput carries the per-meal parameters shared by the classifier and
// every strategy.
type MealInput struct {
	MealCarbs                  float64
	MealCalories               float64
	UsualBolusFactor           float64
	UsualBeCalories            float64
	InsulinTypeCalorieCovering float64
}
