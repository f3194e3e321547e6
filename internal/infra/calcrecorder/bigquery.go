//go:build gcloud

package calcrecorder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
)

type bigQueryRecord struct {
	CalculationID              string    `bigquery:"calculation_id"`
	CalculatedAt               time.Time `bigquery:"calculated_at"`
	MealCarbs                  float64   `bigquery:"meal_carbs"`
	MealCalories               float64   `bigquery:"meal_calories"`
	UsualBeCalories            float64   `bigquery:"usual_be_calories"`
	InsulinTypeCalorieCovering float64   `bigquery:"insulin_type_calorie_covering"`
	CurrentHour                int64     `bigquery:"current_hour"`
	CurrentMinute              int64     `bigquery:"current_minute"`
	UsualBolusFactor           float64   `bigquery:"usual_bolus_factor"`
	LeanBeFactor               float64   `bigquery:"lean_be_factor"`
	PureCarbBeFactor           float64   `bigquery:"pure_carb_be_factor"`
	BeSum                      float64   `bigquery:"be_sum"`
	BeCalories                 float64   `bigquery:"be_calories"`
	FatProteinCalories         float64   `bigquery:"fat_protein_calories"`
	Strategy                   string    `bigquery:"strategy"`
	Explanation                string    `bigquery:"explanation"`
	CorrectBeFactor            float64   `bigquery:"correct_be_factor"`
	CalorieSurplus             float64   `bigquery:"calorie_surplus"`
	DelayedCalorieBolus        float64   `bigquery:"delayed_calorie_bolus"`
	CorrectBolusSum            float64   `bigquery:"correct_bolus_sum"`
	MovementFactor             float64   `bigquery:"movement_factor"`
	FinalCorrectBolus          float64   `bigquery:"final_correct_bolus"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.CalculationRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "calculation recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, calculation recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, calculation recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	inserter := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter()

	slog.InfoContext(ctx, "calculation recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		table:    cfg.BigQueryDataset + "." + cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) Enabled() bool {
	return true
}

func (r *bigQueryRecorder) RecordCalculation(ctx context.Context, record domain.CalculationRecord) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	row := &bigQueryRecord{
		CalculationID:              record.ID,
		CalculatedAt:               record.CalculatedAt,
		MealCarbs:                  record.MealCarbs,
		MealCalories:               record.MealCalories,
		UsualBeCalories:            record.UsualBeCalories,
		InsulinTypeCalorieCovering: record.InsulinTypeCalorieCovering,
		CurrentHour:                int64(record.CurrentHour),
		CurrentMinute:              int64(record.CurrentMinute),
		UsualBolusFactor:           record.UsualBolusFactor,
		LeanBeFactor:               record.Intermediate.LeanBeFactor,
		PureCarbBeFactor:           record.Intermediate.PureCarbBeFactor,
		BeSum:                      record.Intermediate.BeSum,
		BeCalories:                 record.Intermediate.BeCalories,
		FatProteinCalories:         record.Intermediate.FatProteinCalories,
		Strategy:                   record.Strategy.String(),
		Explanation:                record.Explanation,
		CorrectBeFactor:            record.Result.CorrectBeFactor,
		CalorieSurplus:             record.Result.CalorieSurplus,
		DelayedCalorieBolus:        record.Result.DelayedCalorieBolus,
		CorrectBolusSum:            record.Result.CorrectBolusSum,
		MovementFactor:             record.MovementFactor,
		FinalCorrectBolus:          record.FinalCorrectBolus,
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		return fmt.Errorf("insert calculation %s into BigQuery table %s: %w", record.ID, r.table, err)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
