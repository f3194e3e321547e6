package bolus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/service/factor"
)

// HourlyFactors returns all 24 hours, stored values overlaid on the fallback table.
func (s *Service) HourlyFactors(ctx context.Context) ([]domain.HourlyFactor, error) {
	if s.factorRepo == nil {
		return factor.Merge(nil), nil
	}

	table, err := s.factorRepo.GetHourlyFactors(ctx)
	if err != nil {
		return nil, fmt.Errorf("load hourly factors: %w", err)
	}

	return factor.Merge(table), nil
}

func (s *Service) UpdateHourlyFactor(ctx context.Context, hour int, bolusFactor float64) error {
	if hour < 0 || hour >= domain.HoursPerDay {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidHour, hour)
	}
	if bolusFactor <= 0 {
		return fmt.Errorf("%w: got %g", domain.ErrInvalidFactor, bolusFactor)
	}
	if s.factorRepo == nil {
		return fmt.Errorf("%w: not configured", domain.ErrFactorStoreUnavailable)
	}

	if err := s.factorRepo.SaveHourlyFactor(ctx, hour, bolusFactor); err != nil {
		return fmt.Errorf("save hourly factor: %w", err)
	}

	slog.InfoContext(ctx, "hourly bolus factor updated",
		slog.Int("hour", hour),
		slog.Float64("bolus_factor", bolusFactor),
	)

	return nil
}

func (s *Service) CalorieFactors(ctx context.Context) (*domain.CalorieFactors, error) {
	if s.factorRepo == nil {
		return nil, domain.ErrCalorieFactorsNotFound
	}

	factors, err := s.factorRepo.GetCalorieFactors(ctx)
	if err != nil {
		return nil, err
	}

	return factors, nil
}

func (s *Service) UpdateCalorieFactors(ctx context.Context, factors domain.CalorieFactors) error {
	if factors.UsualBeCalories <= 0 || factors.InsulinTypeCalorieCovering <= 0 {
		return fmt.Errorf("%w: got usual BE calories %g, insulin type calorie covering %g",
			domain.ErrInvalidCalorieFactors, factors.UsualBeCalories, factors.InsulinTypeCalorieCovering)
	}
	if s.factorRepo == nil {
		return fmt.Errorf("%w: not configured", domain.ErrFactorStoreUnavailable)
	}

	if err := s.factorRepo.SaveCalorieFactors(ctx, factors); err != nil {
		return fmt.Errorf("save calorie factors: %w", err)
	}

	slog.InfoContext(ctx, "calorie factors updated",
		slog.Float64("usual_be_calories", factors.UsualBeCalories),
		slog.Float64("insulin_type_calorie_covering", factors.InsulinTypeCalorieCovering),
	)

	return nil
}

// Seed writes the fallback hourly table and the configured calorie factors
// when the store holds none yet.
func (s *Service) Seed(ctx context.Context) error {
	if s.factorRepo == nil {
		return nil
	}

	var errs []error

	seeded, err := s.factorRepo.SeedHourlyFactors(ctx, factor.FallbackTable())
	if err != nil {
		errs = append(errs, fmt.Errorf("seed hourly factors: %w", err))
	} else if seeded {
		slog.InfoContext(ctx, "seeded hourly bolus factors with fallback table")
	}

	seeded, err = s.factorRepo.SeedCalorieFactors(ctx, domain.CalorieFactors{
		UsualBeCalories:            s.settings.UsualBeCalories,
		InsulinTypeCalorieCovering: s.settings.InsulinTypeCalorieCovering,
	})
	if err != nil {
		errs = append(errs, fmt.Errorf("seed calorie factors: %w", err))
	} else if seeded {
		slog.InfoContext(ctx, "seeded calorie factors",
			slog.Float64("usual_be_calories", s.settings.UsualBeCalories),
			slog.Float64("insulin_type_calorie_covering", s.settings.InsulinTypeCalorieCovering),
		)
	}

	return errors.Join(errs...)
}
