//go:build !gcloud

package calcrecorder

import (
	"context"
	"fmt"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.CalculationRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "calculation recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, calculation recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "calculation recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
	}, nil
}

func (r *influxDBRecorder) Enabled() bool {
	return true
}

func (r *influxDBRecorder) RecordCalculation(ctx context.Context, record domain.CalculationRecord) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	point := influxdb2.NewPoint(
		measurementName,
		recordTags(record),
		recordFields(record),
		record.CalculatedAt,
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		return fmt.Errorf("write calculation %s to InfluxDB bucket %s: %w", record.ID, r.bucket, err)
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return r.writeAPI.Flush(ctx)
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
