package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability/tracing"
)

const (
	hourlyFactorsKey  = "bolus:factors:hourly"
	calorieFactorsKey = "bolus:factors:calorie"

	usualBeCaloriesField            = "usual_be_calories"
	insulinTypeCalorieCoveringField = "insulin_type_calorie_covering"
)

type factorRepository struct {
	client *redis.Client
}

func NewFactorRepository(client *redis.Client) domain.FactorRepository {
	return &factorRepository{
		client: client,
	}
}

func (r *factorRepository) GetHourlyFactors(ctx context.Context) (domain.HourlyFactorTable, error) {
	ctx, span := tracing.StartRedisOperationSpan(ctx, "hgetall", hourlyFactorsKey)
	defer span.End()

	values, err := r.client.HGetAll(ctx, hourlyFactorsKey).Result()
	if err != nil {
		err = fmt.Errorf("%w: get hourly factors: %v", ErrRedisConnection, err)
		tracing.RecordError(span, err)
		return nil, err
	}

	table := make(domain.HourlyFactorTable, len(values))
	for field, raw := range values {
		hour, err := strconv.Atoi(field)
		if err != nil || hour < 0 || hour >= domain.HoursPerDay {
			err = fmt.Errorf("%w: hour %q", ErrInvalidFactorData, field)
			tracing.RecordError(span, err)
			return nil, err
		}

		factor, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			err = fmt.Errorf("%w: factor %q for hour %d", ErrInvalidFactorData, raw, hour)
			tracing.RecordError(span, err)
			return nil, err
		}

		table[hour] = factor
	}

	tracing.RecordError(span, nil)
	return table, nil
}

func (r *factorRepository) SaveHourlyFactor(ctx context.Context, hour int, factor float64) error {
	ctx, span := tracing.StartRedisOperationSpan(ctx, "hset", hourlyFactorsKey)
	defer span.End()

	err := r.client.HSet(ctx, hourlyFactorsKey, strconv.Itoa(hour), formatFloat(factor)).Err()
	if err != nil {
		err = fmt.Errorf("%w: save hourly factor: %v", ErrRedisConnection, err)
	}
	tracing.RecordError(span, err)
	return err
}

func (r *factorRepository) SeedHourlyFactors(ctx context.Context, table domain.HourlyFactorTable) (bool, error) {
	values := make(map[string]any, len(table))
	for hour, factor := range table {
		values[strconv.Itoa(hour)] = formatFloat(factor)
	}

	return r.seedHash(ctx, hourlyFactorsKey, values)
}

func (r *factorRepository) GetCalorieFactors(ctx context.Context) (*domain.CalorieFactors, error) {
	ctx, span := tracing.StartRedisOperationSpan(ctx, "hmget", calorieFactorsKey)
	defer span.End()

	values, err := r.client.HMGet(ctx, calorieFactorsKey, usualBeCaloriesField, insulinTypeCalorieCoveringField).Result()
	if err != nil {
		err = fmt.Errorf("%w: get calorie factors: %v", ErrRedisConnection, err)
		tracing.RecordError(span, err)
		return nil, err
	}

	// A missing hash is an expected state, not a span error.
	if values[0] == nil || values[1] == nil {
		tracing.RecordError(span, nil)
		return nil, domain.ErrCalorieFactorsNotFound
	}

	usual, err := parseFloatValue(values[0])
	if err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrInvalidFactorData, usualBeCaloriesField, err)
		tracing.RecordError(span, err)
		return nil, err
	}

	covering, err := parseFloatValue(values[1])
	if err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrInvalidFactorData, insulinTypeCalorieCoveringField, err)
		tracing.RecordError(span, err)
		return nil, err
	}

	tracing.RecordError(span, nil)
	return &domain.CalorieFactors{
		UsualBeCalories:            usual,
		InsulinTypeCalorieCovering: covering,
	}, nil
}

func (r *factorRepository) SaveCalorieFactors(ctx context.Context, factors domain.CalorieFactors) error {
	ctx, span := tracing.StartRedisOperationSpan(ctx, "hset", calorieFactorsKey)
	defer span.End()

	err := r.client.HSet(ctx, calorieFactorsKey, calorieFactorValues(factors)).Err()
	if err != nil {
		err = fmt.Errorf("%w: save calorie factors: %v", ErrRedisConnection, err)
	}
	tracing.RecordError(span, err)
	return err
}

func (r *factorRepository) SeedCalorieFactors(ctx context.Context, factors domain.CalorieFactors) (bool, error) {
	return r.seedHash(ctx, calorieFactorsKey, calorieFactorValues(factors))
}

// seedHash writes values to key only if key does not exist yet. It reports
// whether the write happened.
func (r *factorRepository) seedHash(ctx context.Context, key string, values map[string]any) (bool, error) {
	ctx, span := tracing.StartRedisOperationSpan(ctx, "seed", key)
	defer span.End()

	if len(values) == 0 {
		tracing.RecordError(span, nil)
		return false, nil
	}

	seeded := false
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, values)
			return nil
		})
		if err != nil {
			return err
		}

		seeded = true
		return nil
	}, key)

	// A concurrent writer created the key first.
	if errors.Is(err, redis.TxFailedErr) {
		err = nil
		seeded = false
	}
	if err != nil {
		err = fmt.Errorf("%w: seed %s: %v", ErrRedisConnection, key, err)
	}

	tracing.RecordError(span, err)
	return seeded, err
}

func calorieFactorValues(factors domain.CalorieFactors) map[string]any {
	return map[string]any{
		usualBeCaloriesField:            formatFloat(factors.UsualBeCalories),
		insulinTypeCalorieCoveringField: formatFloat(factors.InsulinTypeCalorieCovering),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func parseFloatValue(v any) (float64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected type %T", v)
	}
	return strconv.ParseFloat(s, 64)
}
