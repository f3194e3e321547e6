// Package adjust applies the expected-activity correction to the immediate bolus.
package adjust

import "github.com/KasumiMercury/primind-bolus-calculator/internal/domain"

// NeutralMovementFactor leaves the bolus unchanged.
const NeutralMovementFactor = 1.0

// Apply scales the immediate bolus of result by movementFactor. The delayed
// bolus is not adjusted.
func Apply(result domain.MethodResult, movementFactor float64) float64 {
	return result.CorrectBolusSum * movementFactor
}
