package domain

import "context"

//go:generate mockgen -source=factor_repository.go -destination=mock_factor_repository.go -package=domain

// FactorRepository stores the hourly bolus factors and calorie factors.
type FactorRepository interface {
	// GetHourlyFactors returns whatever hours are stored; an empty table is not an error.
	GetHourlyFactors(ctx context.Context) (HourlyFactorTable, error)
	SaveHourlyFactor(ctx context.Context, hour int, factor float64) error
	// SeedHourlyFactors writes the given table only when no factors are stored yet.
	SeedHourlyFactors(ctx context.Context, table HourlyFactorTable) (bool, error)

	GetCalorieFactors(ctx context.Context) (*CalorieFactors, error)
	SaveCalorieFactors(ctx context.Context, factors CalorieFactors) error
	SeedCalorieFactors(ctx context.Context, factors CalorieFactors) (bool, error)
}
