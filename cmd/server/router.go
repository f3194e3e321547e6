package main

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/handler"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/health"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability/logging"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability/metrics"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability/middleware"
)

const serviceModule = logging.Module("bolus-calculator")

type routerDeps struct {
	allowedOrigins []string
	httpMetrics    *metrics.HTTPMetrics
	healthChecker  *health.Checker
	bolusHandler   *handler.BolusHandler
	factorHandler  *handler.FactorHandler
	apiKey         string
}

func newRouter(deps routerDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      serviceModule,
		TracerName:  "github.com/KasumiMercury/primind-bolus-calculator/internal/observability/middleware",
		HTTPMetrics: deps.httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())
	r.Use(cors.New(newCORSConfig(deps.allowedOrigins)))

	r.GET("/health/live", deps.healthChecker.LiveHandler())
	r.GET("/health/ready", deps.healthChecker.ReadyHandler())
	r.GET("/health", deps.healthChecker.ReadyHandler())

	handler.RegisterRoutes(r, deps.bolusHandler, deps.factorHandler, deps.apiKey)

	return r
}

// newCORSConfig allows every origin when none are configured or "*" is listed.
func newCORSConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-API-Key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = allowedOrigins
	return cfg
}
