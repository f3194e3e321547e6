package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/service/bolus"
)

type hourlyFactorRequest struct {
	Hour        *int     `json:"hour" binding:"required"`
	BolusFactor *float64 `json:"bolusFactor" binding:"required"`
}

type calorieFactorsRequest struct {
	UsualBeCalories            *float64 `json:"usualBeCalories" binding:"required"`
	InsulinTypeCalorieCovering *float64 `json:"insulinTypeCalorieCovering" binding:"required"`
}

type FactorHandler struct {
	bolusService *bolus.Service
}

func NewFactorHandler(bolusService *bolus.Service) *FactorHandler {
	return &FactorHandler{
		bolusService: bolusService,
	}
}

func (h *FactorHandler) HandleListHourlyFactors(c *gin.Context) {
	rows, err := h.bolusService.HourlyFactors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *FactorHandler) HandleUpdateHourlyFactor(c *gin.Context) {
	pathHour, err := strconv.Atoi(c.Param("hour"))
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid hour %q", c.Param("hour")))
		return
	}

	var body hourlyFactorRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if *body.Hour != pathHour {
		respondError(c, http.StatusBadRequest,
			fmt.Sprintf("hour in path (%d) does not match hour in body (%d)", pathHour, *body.Hour))
		return
	}

	if err := h.bolusService.UpdateHourlyFactor(c.Request.Context(), pathHour, *body.BolusFactor); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.HourlyFactor{Hour: pathHour, BolusFactor: *body.BolusFactor})
}

func (h *FactorHandler) HandleGetCalorieFactors(c *gin.Context) {
	factors, err := h.bolusService.CalorieFactors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, factors)
}

func (h *FactorHandler) HandleUpdateCalorieFactors(c *gin.Context) {
	var body calorieFactorsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	factors := domain.CalorieFactors{
		UsualBeCalories:            *body.UsualBeCalories,
		InsulinTypeCalorieCovering: *body.InsulinTypeCalorieCovering,
	}

	if err := h.bolusService.UpdateCalorieFactors(c.Request.Context(), factors); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, factors)
}
