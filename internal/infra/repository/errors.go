package repository

import (
	"errors"
	"fmt"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
)

var (
	ErrRedisConnection   = fmt.Errorf("%w: redis connection error", domain.ErrFactorStoreUnavailable)
	ErrInvalidFactorData = errors.New("invalid factor data")
)
