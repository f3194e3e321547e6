// Package bolus runs the dose pipeline and connects it to the factor store and result recorder.
package bolus

import (
	"fmt"
	"math"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/service/adjust"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/service/factor"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/service/intermediate"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/service/method"
)

const degenerateUsualBeCalories = -100.0

// Pipeline chains averaging, derivation, classification, the strategy
// computation and the movement adjustment. It performs no I/O.
type Pipeline struct {
	averager      *factor.Averager
	deriver       *intermediate.Deriver
	classifier    *method.Classifier
	windowMinutes int
}

func NewPipeline(windowMinutes int) *Pipeline {
	if windowMinutes <= 0 {
		windowMinutes = factor.DefaultWindowMinutes
	}
	return &Pipeline{
		averager:      factor.NewAverager(),
		deriver:       intermediate.NewDeriver(),
		classifier:    method.NewClassifier(),
		windowMinutes: windowMinutes,
	}
}

func (p *Pipeline) WindowMinutes() int {
	return p.windowMinutes
}

// Run computes the dose for req against table. The calorie factors in req
// must already be resolved.
func (p *Pipeline) Run(req Request, table domain.HourlyFactorTable) (*Result, error) {
	if req.UsualBeCalories == nil || req.InsulinTypeCalorieCovering == nil {
		return nil, fmt.Errorf("%w: calorie factors not resolved", domain.ErrInvalidCalorieFactors)
	}
	usualBeCalories, covering := *req.UsualBeCalories, *req.InsulinTypeCalorieCovering

	if err := validateCalorieFactors(usualBeCalories, covering); err != nil {
		return nil, err
	}

	usualBolusFactor, err := p.averager.Average(req.CurrentHour, req.CurrentMinute, p.windowMinutes, table)
	if err != nil {
		return nil, err
	}

	factors := p.deriver.Derive(req.MealCarbs, req.MealCalories, usualBolusFactor, usualBeCalories)
	selection := p.classifier.Classify(req.MealCarbs, usualBeCalories, factors)

	methodResult, err := method.Calculate(selection.Strategy, domain.MealInput{
		MealCarbs:                  req.MealCarbs,
		MealCalories:               req.MealCalories,
		UsualBolusFactor:           usualBolusFactor,
		UsualBeCalories:            usualBeCalories,
		InsulinTypeCalorieCovering: covering,
	}, factors)
	if err != nil {
		return nil, err
	}

	finalCorrectBolus := adjust.Apply(methodResult, req.MovementFactor)
	if err := checkFinite(factors, methodResult, finalCorrectBolus); err != nil {
		return nil, err
	}

	return &Result{
		MealCarbs:                  req.MealCarbs,
		MealCalories:               req.MealCalories,
		UsualBeCalories:            usualBeCalories,
		InsulinTypeCalorieCovering: covering,
		CurrentHour:                req.CurrentHour,
		CurrentMinute:              req.CurrentMinute,
		UsualBolusFactor:           usualBolusFactor,
		UsedFallbackTable:          !table.IsComplete(),
		Intermediate:               factors,
		Selection:                  selection,
		Method:                     methodResult,
		MovementFactor:             req.MovementFactor,
		FinalCorrectBolus:          finalCorrectBolus,
		StorageStatus:              StorageDisabled,
	}, nil
}

func validateCalorieFactors(usualBeCalories, insulinTypeCalorieCovering float64) error {
	if usualBeCalories == degenerateUsualBeCalories {
		return domain.ErrDegenerateUsualBeCalories
	}
	if insulinTypeCalorieCovering <= 0 {
		return fmt.Errorf("%w: insulin type calorie covering %g", domain.ErrInvalidCalorieFactors, insulinTypeCalorieCovering)
	}
	return nil
}

// checkFinite rejects results that overflowed to ±Inf or became NaN.
func checkFinite(factors domain.IntermediateFactors, result domain.MethodResult, finalCorrectBolus float64) error {
	values := []struct {
		name  string
		value float64
	}{
		{"lean BE factor", factors.LeanBeFactor},
		{"pure carb BE factor", factors.PureCarbBeFactor},
		{"BE sum", factors.BeSum},
		{"calories per BE", factors.BeCalories},
		{"fat/protein calories", factors.FatProteinCalories},
		{"correct BE factor", result.CorrectBeFactor},
		{"calorie surplus", result.CalorieSurplus},
		{"delayed calorie bolus", result.DelayedCalorieBolus},
		{"correct bolus sum", result.CorrectBolusSum},
		{"method fat/protein calories", result.FatProteinCalories},
		{"final correct bolus", finalCorrectBolus},
	}
	for _, v := range values {
		if math.IsInf(v.value, 0) || math.IsNaN(v.value) {
			return fmt.Errorf("%w: %s is %v", domain.ErrNonFiniteResult, v.name, v.value)
		}
	}
	return nil
}
