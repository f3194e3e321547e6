package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/service/bolus"
)

const (
	statusCalculated                = "calculation succeeded"
	statusCalculatedNotStored       = "calculation succeeded, storage failed"
	statusCalculatedStorageDisabled = "calculation succeeded, storage disabled"
)

type calculateRequest struct {
	MealCarbs                  *float64 `json:"mealCarbs" binding:"required"`
	MealCalories               *float64 `json:"mealCalories" binding:"required"`
	UsualBeCalories            *float64 `json:"usualBeCalories"`
	InsulinTypeCalorieCovering *float64 `json:"insulinTypeCalorieCovering"`
	CurrentHour                *int     `json:"currentHour" binding:"required"`
	CurrentMinute              *int     `json:"currentMinute" binding:"required"`
	MovementFactor             *float64 `json:"movementFactor" binding:"required"`
	EnableDatabaseStorage      bool     `json:"enableDatabaseStorage"`
}

type calculateResponse struct {
	CalculationID string `json:"calculationId,omitempty"`

	MealCarbs                  float64 `json:"mealCarbs"`
	MealCalories               float64 `json:"mealCalories"`
	UsualBeCalories            float64 `json:"usualBeCalories"`
	InsulinTypeCalorieCovering float64 `json:"insulinTypeCalorieCovering"`
	CurrentHour                int     `json:"currentHour"`
	CurrentMinute              int     `json:"currentMinute"`

	UsualBolusFactor  float64 `json:"usualBolusFactor"`
	UsedFallbackTable bool    `json:"usedFallbackTable"`

	IntermediateLeanBeFactor       float64 `json:"intermediateLeanBeFactor"`
	IntermediatePureCarbBeFactor   float64 `json:"intermediatePureCarbBeFactor"`
	IntermediateBeSum              float64 `json:"intermediateBeSum"`
	IntermediateBeCalories         float64 `json:"intermediateBeCalories"`
	IntermediateFatProteinCalories float64 `json:"intermediateFatProteinCalories"`
	MethodCorrectBeFactor          float64 `json:"methodCorrectBeFactor"`
	MethodCalorieSurplus           float64 `json:"methodCalorieSurplus"`
	MethodDelayedCalorieBolus      float64 `json:"methodDelayedCalorieBolus"`
	MethodCorrectBolusSum          float64 `json:"methodCorrectBolusSum"`
	MethodFatProteinCalories       float64 `json:"methodFatProteinCalories"`

	MovementFactor    float64 `json:"movementFactor"`
	FinalCorrectBolus float64 `json:"finalCorrectBolus"`

	Strategy            string `json:"strategy"`
	StrategyExplanation string `json:"strategyExplanation"`
	Status              string `json:"status"`
	StorageStatus       string `json:"storageStatus"`
}

type BolusHandler struct {
	bolusService *bolus.Service
	apiKey       string
}

func NewBolusHandler(bolusService *bolus.Service, apiKey string) *BolusHandler {
	return &BolusHandler{
		bolusService: bolusService,
		apiKey:       apiKey,
	}
}

// HandleCalculate computes a bolus. A storage request with an invalid API key
// still returns the calculation, with 401 and an unauthorized storage status.
func (h *BolusHandler) HandleCalculate(c *gin.Context) {
	ctx := c.Request.Context()

	var body calculateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	authorized := true
	if body.EnableDatabaseStorage && !validAPIKey(h.apiKey, c.GetHeader(apiKeyHeader)) {
		slog.WarnContext(ctx, "storage requested with invalid or missing API key",
			slog.String("client_ip", c.ClientIP()),
		)
		authorized = false
	}

	result, err := h.bolusService.Calculate(ctx, bolus.Request{
		MealCarbs:                  *body.MealCarbs,
		MealCalories:               *body.MealCalories,
		UsualBeCalories:            body.UsualBeCalories,
		InsulinTypeCalorieCovering: body.InsulinTypeCalorieCovering,
		CurrentHour:                *body.CurrentHour,
		CurrentMinute:              *body.CurrentMinute,
		MovementFactor:             *body.MovementFactor,
		Record:                     body.EnableDatabaseStorage && authorized,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !authorized {
		result.StorageStatus = bolus.StorageUnauthorized
		c.JSON(http.StatusUnauthorized, newCalculateResponse(result, statusCalculatedNotStored))
		return
	}

	status := statusCalculated
	switch {
	case result.StorageStatus == bolus.StorageFailed:
		status = statusCalculatedNotStored
	case body.EnableDatabaseStorage && result.StorageStatus == bolus.StorageDisabled:
		status = statusCalculatedStorageDisabled
	}

	c.JSON(http.StatusOK, newCalculateResponse(result, status))
}

func newCalculateResponse(result *bolus.Result, status string) calculateResponse {
	return calculateResponse{
		CalculationID:                  result.CalculationID,
		MealCarbs:                      result.MealCarbs,
		MealCalories:                   result.MealCalories,
		UsualBeCalories:                result.UsualBeCalories,
		InsulinTypeCalorieCovering:     result.InsulinTypeCalorieCovering,
		CurrentHour:                    result.CurrentHour,
		CurrentMinute:                  result.CurrentMinute,
		UsualBolusFactor:               result.UsualBolusFactor,
		UsedFallbackTable:              result.UsedFallbackTable,
		IntermediateLeanBeFactor:       result.Intermediate.LeanBeFactor,
		IntermediatePureCarbBeFactor:   result.Intermediate.PureCarbBeFactor,
		IntermediateBeSum:              result.Intermediate.BeSum,
		IntermediateBeCalories:         result.Intermediate.BeCalories,
		IntermediateFatProteinCalories: result.Intermediate.FatProteinCalories,
		MethodCorrectBeFactor:          result.Method.CorrectBeFactor,
		MethodCalorieSurplus:           result.Method.CalorieSurplus,
		MethodDelayedCalorieBolus:      result.Method.DelayedCalorieBolus,
		MethodCorrectBolusSum:          result.Method.CorrectBolusSum,
		MethodFatProteinCalories:       result.Method.FatProteinCalories,
		MovementFactor:                 result.MovementFactor,
		FinalCorrectBolus:              result.FinalCorrectBolus,
		Strategy:                       result.Selection.Strategy.String(),
		StrategyExplanation:            result.Selection.Explanation,
		Status:                         status,
		StorageStatus:                  result.StorageStatus.String(),
	}
}
