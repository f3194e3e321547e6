package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnknownStrategy        = errors.New("unknown calculation strategy")
	ErrCalorieFactorsNotFound = errors.New("calorie factors not found")
	ErrFactorStoreUnavailable = errors.New("factor store unavailable")
)

var (
	ErrInvalidHour               = fmt.Errorf("%w: hour must be between 0 and 23", ErrInvalidInput)
	ErrInvalidMinute             = fmt.Errorf("%w: minute must be between 0 and 59", ErrInvalidInput)
	ErrInvalidDuration           = fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	ErrInvalidFactor             = fmt.Errorf("%w: bolus factor must be positive", ErrInvalidInput)
	ErrInvalidCalorieFactors     = fmt.Errorf("%w: calorie factors must be positive", ErrInvalidInput)
	ErrNonFiniteResult           = fmt.Errorf("%w: meal values overflow the dose computation", ErrInvalidInput)
	ErrDegenerateUsualBeCalories = fmt.Errorf("%w: usual BE calories of -100 make every BE factor divide by zero", ErrInvalidInput)
)
