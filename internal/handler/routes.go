package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the calculation and factor endpoints under /api/v1.
func RegisterRoutes(r gin.IRouter, bolusHandler *BolusHandler, factorHandler *FactorHandler, apiKey string) {
	v1 := r.Group("/api/v1")
	v1.POST("/calculate", bolusHandler.HandleCalculate)

	v1.GET("/bolus-factors", factorHandler.HandleListHourlyFactors)
	v1.GET("/calorie-factors", factorHandler.HandleGetCalorieFactors)

	admin := v1.Group("", RequireAPIKey(apiKey))
	admin.PUT("/bolus-factors/:hour", factorHandler.HandleUpdateHourlyFactor)
	admin.PUT("/calorie-factors", factorHandler.HandleUpdateCalorieFactors)
}
