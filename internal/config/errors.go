package config

import "errors"

var (
	ErrRedisAddrMissing      = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB        = errors.New("REDIS_DB must be a non-negative integer")
	ErrInvalidRedisTLS       = errors.New("REDIS_TLS must be a boolean")
	ErrInvalidWindowMinutes  = errors.New("BOLUS_WINDOW_MINUTES must be a positive integer")
	ErrInvalidCalorieDefault = errors.New("default calorie factor must be a positive number")
	ErrGCPProjectIDMissing   = errors.New("GOOGLE_CLOUD_PROJECT is required")
)
