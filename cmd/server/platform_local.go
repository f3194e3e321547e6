//go:build !gcloud

package main

import (
	"context"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/config"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability/logging"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     cfg.ServiceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   logging.Environment(cfg.Env),
		LogLevel:      cfg.LogLevel,
		GCPProjectID:  "",
		SamplingRate:  1.0,
		DefaultModule: serviceModule,
	})
}
