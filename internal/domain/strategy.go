package domain

// Strategy identifies which dose computation is applied to a meal.
// The set is closed; the classifier always yields exactly one of these.
type Strategy string

const (
	StrategyCalorieSurplus Strategy = "calorie_surplus"
	StrategySupersize      Strategy = "supersize"
	StrategyHighCarb       Strategy = "high_carb"
	StrategyNoCarb         Strategy = "no_carb"
)

func (s Strategy) String() string {
	return string(s)
}

func (s Strategy) IsValid() bool {
	switch s {
	case StrategyCalorieSurplus, StrategySupersize, StrategyHighCarb, StrategyNoCarb:
		return true
	}
	return false
}

// HasDelayedBolus reports whether the strategy can produce an extended
// (delayed) dose component.
func (s Strategy) HasDelayedBolus() bool {
	return s == StrategyCalorieSurplus || s == StrategySupersize || s == StrategyNoCarb
}

// StrategySelection pairs the chosen strategy with the rationale that
// names the thresholds which triggered it.
type StrategySelection struct {
	Strategy    Strategy
	Explanation string
}
