package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability/logging"
)

const (
	defaultPort        = "8080"
	defaultServiceName = "bolus-calculator"
	defaultEnv         = "dev"
)

type Config struct {
	Port           string
	LogLevel       slog.Level
	Env            string
	ServiceName    string
	GCPProjectID   string
	APIKey         string
	AllowedOrigins []string
	Redis          *RedisConfig
	Calculation    *CalculationConfig
}

// Load reads the configuration from the environment. Values in a .env file
// in the working directory are applied first without overriding the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	calculationConfig, err := LoadCalculationConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:           getEnvOrDefault("PORT", defaultPort),
		LogLevel:       logging.ParseLevel(os.Getenv("LOG_LEVEL")),
		Env:            getEnvOrDefault("ENV", defaultEnv),
		ServiceName:    getEnvOrDefault("SERVICE_NAME", defaultServiceName),
		GCPProjectID:   os.Getenv("GOOGLE_CLOUD_PROJECT"),
		APIKey:         os.Getenv("API_KEY_SECRET"),
		AllowedOrigins: parseList(os.Getenv("ALLOWED_ORIGINS")),
		Redis:          redisConfig,
		Calculation:    calculationConfig,
	}, nil
}

func parseList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
