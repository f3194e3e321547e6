//go:build gcloud

package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/config"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability/logging"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = cfg.ServiceName
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		LogLevel:      cfg.LogLevel,
		GCPProjectID:  cfg.GCPProjectID,
		SamplingRate:  1.0,
		DefaultModule: serviceModule,
	})
}
