package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	windowMinutesEnv              = "BOLUS_WINDOW_MINUTES"
	defaultUsualBeCaloriesEnv     = "DEFAULT_USUAL_BE_CALORIES"
	defaultCalorieCoveringEnv     = "DEFAULT_INSULIN_CALORIE_COVERING"
	defaultWindowMinutes          = 120
	defaultUsualBeCalories        = 105.0
	defaultInsulinCalorieCovering = 200.0
)

type CalculationConfig struct {
	WindowMinutes                     int
	DefaultUsualBeCalories            float64
	DefaultInsulinTypeCalorieCovering float64
}

func LoadCalculationConfig() (*CalculationConfig, error) {
	cfg := &CalculationConfig{
		WindowMinutes:                     defaultWindowMinutes,
		DefaultUsualBeCalories:            defaultUsualBeCalories,
		DefaultInsulinTypeCalorieCovering: defaultInsulinCalorieCovering,
	}

	if v := os.Getenv(windowMinutesEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWindowMinutes, v)
		}
		cfg.WindowMinutes = parsed
	}

	if v := os.Getenv(defaultUsualBeCaloriesEnv); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidCalorieDefault, defaultUsualBeCaloriesEnv, v)
		}
		cfg.DefaultUsualBeCalories = parsed
	}

	if v := os.Getenv(defaultCalorieCoveringEnv); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidCalorieDefault, defaultCalorieCoveringEnv, v)
		}
		cfg.DefaultInsulinTypeCalorieCovering = parsed
	}

	return cfg, nil
}

func (c *CalculationConfig) Validate() error {
	if c.WindowMinutes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWindowMinutes, c.WindowMinutes)
	}
	if c.DefaultUsualBeCalories <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidCalorieDefault, defaultUsualBeCaloriesEnv)
	}
	if c.DefaultInsulinTypeCalorieCovering <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidCalorieDefault, defaultCalorieCoveringEnv)
	}
	return nil
}
