// File: /controllers/calculator_controller.go
package controllers

import (
	"net/http"

	"fueltrack-api/models"
	"fueltrack-api/services"
	"fueltrack-api/utils"

	"github.com/gin-gonic/gin"
)

type CalculatorController struct {
	stats *services.StatsService
}

func NewCalculatorController(stats *services.StatsService) *CalculatorController {
	return &CalculatorController{stats: stats}
}

// EstimateTrip prices a trip with the vehicle's own average consumption.
func (cc *CalculatorController) EstimateTrip(c *gin.Context) {
	var req models.TripEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if req.Unit != "" && !req.Unit.IsValid() {
		utils.SendAppError(c, utils.NewValidationError("Unknown unit: "+string(req.Unit)))
		return
	}

	stats, err := cc.stats.VehicleStats(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	estimate, err := services.EstimateTrip(*stats, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}
