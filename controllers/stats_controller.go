// File: /controllers/stats_controller.go
package controllers

import (
	"net/http"

	"fueltrack-api/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// Service errors are attached with c.Error and rendered by middleware.ErrorHandler.
func (sc *StatsController) GetVehicleStats(c *gin.Context) {
	stats, err := sc.stats.VehicleStats(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (sc *StatsController) GetDashboard(c *gin.Context) {
	dashboard, err := sc.stats.DashboardStats(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
