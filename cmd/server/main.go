package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/config"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/handler"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/health"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/infra/calcrecorder"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/infra/repository"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability/metrics"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/service/bolus"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if cfg.APIKey == "" {
		slog.Warn("API_KEY_SECRET not set, storage requests and factor updates will be rejected")
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	bolusMetrics, err := metrics.NewBolusMetrics()
	if err != nil {
		slog.Error("failed to initialize bolus metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB for local builds, BigQuery for gcloud
	recorder, err := calcrecorder.NewRecorder(ctx, calcrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize calculation recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := recorder.Flush(flushCtx); err != nil {
			slog.Warn("failed to flush calculation recorder", slog.String("error", err.Error()))
		}
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close calculation recorder", slog.String("error", err.Error()))
		}
	}()

	redisOptions := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOptions)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	bolusService := bolus.NewService(
		repository.NewFactorRepository(redisClient),
		recorder,
		bolus.Settings{
			WindowMinutes:              cfg.Calculation.WindowMinutes,
			UsualBeCalories:            cfg.Calculation.DefaultUsualBeCalories,
			InsulinTypeCalorieCovering: cfg.Calculation.DefaultInsulinTypeCalorieCovering,
		},
		bolusMetrics,
	)

	// Calculations still work on the fallback table while redis is down.
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Warn("failed to connect redis, factors will fall back to defaults",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
	} else {
		slog.Info("redis connected",
			slog.String("addr", cfg.Redis.Addr),
		)
		if err := bolusService.Seed(ctx); err != nil {
			slog.Warn("failed to seed factor store", slog.String("error", err.Error()))
		}
	}

	healthChecker := health.NewChecker(Version).AddRedis(redisClient)

	r := newRouter(routerDeps{
		allowedOrigins: cfg.AllowedOrigins,
		httpMetrics:    httpMetrics,
		healthChecker:  healthChecker,
		bolusHandler:   handler.NewBolusHandler(bolusService, cfg.APIKey),
		factorHandler:  handler.NewFactorHandler(bolusService),
		apiKey:         cfg.APIKey,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("window_minutes", cfg.Calculation.WindowMinutes),
			slog.Float64("default_usual_be_calories", cfg.Calculation.DefaultUsualBeCalories),
			slog.Float64("default_insulin_calorie_covering", cfg.Calculation.DefaultInsulinTypeCalorieCovering),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
