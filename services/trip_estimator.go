// File: /services/trip_estimator.go
package services

import (
	"fueltrack-api/models"
	"fueltrack-api/utils"
)

// EstimateTrip projects a trip's energy and cost from vehicle statistics.
// Without an explicit unit the first group with consumption samples is used.
// An explicit price overrides the group's average price.
func EstimateTrip(stats models.VehicleStats, req models.TripEstimateRequest) (models.TripEstimate, error) {
	var group *models.EnergyUnitStats
	for i := range stats.Groups {
		g := &stats.Groups[i]
		if req.Unit != "" && g.Unit != req.Unit {
			continue
		}
		if g.ConsumptionSamples > 0 {
			group = g
			break
		}
	}
	if group == nil {
		if req.Unit != "" {
			return models.TripEstimate{}, utils.ErrInsufficientData.WithMessage("Not enough %s entries to estimate consumption", req.Unit)
		}
		return models.TripEstimate{}, utils.ErrInsufficientData
	}

	price := group.AveragePricePerUnit
	if req.PricePerUnit != nil {
		price = *req.PricePerUnit
	}

	estimate := models.TripEstimate{
		VehicleID:          stats.VehicleID,
		Unit:               group.Unit,
		Distance:           req.Distance,
		AverageConsumption: group.AverageConsumption,
		PricePerUnit:       price,
		OtherCosts:         req.OtherCosts,
	}
	estimate.EnergyNeeded = req.Distance * group.AverageConsumption / 100
	estimate.EnergyCost = estimate.EnergyNeeded * price
	estimate.TotalCost = estimate.EnergyCost + req.OtherCosts
	if req.Distance > 0 {
		estimate.CostPerDistance = estimate.TotalCost / req.Distance
	}
	return estimate, nil
}
