package bolus

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability/metrics"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability/tracing"
)

type Service struct {
	factorRepo   domain.FactorRepository
	recorder     domain.CalculationRecorder
	pipeline     *Pipeline
	settings     Settings
	bolusMetrics *metrics.BolusMetrics
	now          func() time.Time
}

func NewService(
	factorRepo domain.FactorRepository,
	recorder domain.CalculationRecorder,
	settings Settings,
	bolusMetrics *metrics.BolusMetrics,
) *Service {
	return &Service{
		factorRepo:   factorRepo,
		recorder:     recorder,
		pipeline:     NewPipeline(settings.WindowMinutes),
		settings:     settings,
		bolusMetrics: bolusMetrics,
		now:          time.Now,
	}
}

func (s *Service) Calculate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	ctx, span := tracing.StartCalculationSpan(ctx, req.CurrentHour, req.CurrentMinute, s.pipeline.WindowMinutes())
	defer span.End()

	resolved := s.resolveCalorieFactors(ctx, req)
	table := s.loadFactorTable(ctx)

	result, err := s.pipeline.Run(resolved, table)
	if err != nil {
		slog.WarnContext(ctx, "bolus calculation rejected",
			slog.String("error", err.Error()),
		)
		tracing.RecordError(span, err)
		s.recordOutcome(ctx, "", "invalid")
		return nil, err
	}

	slog.InfoContext(ctx, "bolus calculated",
		slog.String("strategy", result.Selection.Strategy.String()),
		slog.String("explanation", result.Selection.Explanation),
		slog.Float64("usual_bolus_factor", result.UsualBolusFactor),
		slog.Float64("correct_bolus_sum", result.Method.CorrectBolusSum),
		slog.Float64("delayed_calorie_bolus", result.Method.DelayedCalorieBolus),
		slog.Float64("final_correct_bolus", result.FinalCorrectBolus),
		slog.Bool("used_fallback_table", result.UsedFallbackTable),
	)

	if req.Record {
		s.record(ctx, result)
	}

	tracing.RecordCalculationResult(span, result.Selection, result.UsualBolusFactor, result.FinalCorrectBolus, result.Method.DelayedCalorieBolus, nil)

	if s.bolusMetrics != nil {
		strategy := result.Selection.Strategy.String()
		s.bolusMetrics.RecordCalculation(ctx, strategy, "success")
		s.bolusMetrics.RecordFinalBolus(ctx, strategy, result.FinalCorrectBolus)
		s.bolusMetrics.RecordCalculationDuration(ctx, time.Since(start))
	}

	return result, nil
}

// resolveCalorieFactors fills nil calorie factors from the store, then from settings.
func (s *Service) resolveCalorieFactors(ctx context.Context, req Request) Request {
	if req.UsualBeCalories != nil && req.InsulinTypeCalorieCovering != nil {
		return req
	}

	defaults := domain.CalorieFactors{
		UsualBeCalories:            s.settings.UsualBeCalories,
		InsulinTypeCalorieCovering: s.settings.InsulinTypeCalorieCovering,
	}

	if s.factorRepo != nil {
		stored, err := s.factorRepo.GetCalorieFactors(ctx)
		switch {
		case err == nil && stored != nil:
			defaults = *stored
		case errors.Is(err, domain.ErrCalorieFactorsNotFound):
			slog.DebugContext(ctx, "no stored calorie factors, using configured defaults")
		case err != nil:
			slog.WarnContext(ctx, "failed to load calorie factors, using configured defaults",
				slog.String("error", err.Error()),
			)
		}
	}

	if req.UsualBeCalories == nil {
		req.UsualBeCalories = &defaults.UsualBeCalories
	}
	if req.InsulinTypeCalorieCovering == nil {
		req.InsulinTypeCalorieCovering = &defaults.InsulinTypeCalorieCovering
	}

	return req
}

// loadFactorTable returns the stored hourly factors. On a store error the
// table is nil and every hour resolves to the fallback factor.
func (s *Service) loadFactorTable(ctx context.Context) domain.HourlyFactorTable {
	if s.factorRepo == nil {
		return nil
	}

	ctx, span := tracing.StartFactorLoadSpan(ctx)
	defer span.End()

	table, err := s.factorRepo.GetHourlyFactors(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to load hourly bolus factors, using fallback table",
			slog.String("error", err.Error()),
		)
		tracing.RecordFactorLoadResult(span, 0, true, err)
		if s.bolusMetrics != nil {
			s.bolusMetrics.RecordFactorTableFallback(ctx, "error")
		}
		return nil
	}

	complete := table.IsComplete()
	if !complete {
		slog.WarnContext(ctx, "hourly bolus factor table incomplete, missing hours use fallback",
			slog.Int("stored_hours", len(table)),
		)
		if s.bolusMetrics != nil {
			s.bolusMetrics.RecordFactorTableFallback(ctx, "incomplete")
		}
	}
	tracing.RecordFactorLoadResult(span, len(table), !complete, nil)

	return table
}

func (s *Service) record(ctx context.Context, result *Result) {
	if s.recorder == nil || !s.recorder.Enabled() {
		slog.WarnContext(ctx, "calculation storage requested but recording is disabled")
		result.StorageStatus = StorageDisabled
		if s.bolusMetrics != nil {
			s.bolusMetrics.RecordRecording(ctx, "disabled")
		}
		return
	}

	result.CalculationID = uuid.NewString()

	ctx, span := tracing.StartRecordSpan(ctx, result.CalculationID)
	defer span.End()

	err := s.recorder.RecordCalculation(ctx, newCalculationRecord(result, s.now()))
	tracing.RecordError(span, err)
	if err != nil {
		slog.ErrorContext(ctx, "failed to record calculation",
			slog.String("calculation_id", result.CalculationID),
			slog.String("error", err.Error()),
		)
		result.StorageStatus = StorageFailed
		if s.bolusMetrics != nil {
			s.bolusMetrics.RecordRecording(ctx, "failed")
		}
		return
	}

	result.StorageStatus = StorageStored
	if s.bolusMetrics != nil {
		s.bolusMetrics.RecordRecording(ctx, "stored")
	}
}

func (s *Service) recordOutcome(ctx context.Context, strategy, outcome string) {
	if s.bolusMetrics != nil {
		s.bolusMetrics.RecordCalculation(ctx, strategy, outcome)
	}
}

func newCalculationRecord(result *Result, at time.Time) domain.CalculationRecord {
	return domain.CalculationRecord{
		ID:                         result.CalculationID,
		CalculatedAt:               at,
		MealCarbs:                  result.MealCarbs,
		MealCalories:               result.MealCalories,
		UsualBeCalories:            result.UsualBeCalories,
		InsulinTypeCalorieCovering: result.InsulinTypeCalorieCovering,
		CurrentHour:                result.CurrentHour,
		CurrentMinute:              result.CurrentMinute,
		UsualBolusFactor:           result.UsualBolusFactor,
		Intermediate:               result.Intermediate,
		Strategy:                   result.Selection.Strategy,
		Explanation:                result.Selection.Explanation,
		Result:                     result.Method,
		MovementFactor:             result.MovementFactor,
		FinalCorrectBolus:          result.FinalCorrectBolus,
	}
}
