// File: /models/trip_estimate.go
package models

type TripEstimateRequest struct {
	Distance     float64    `json:"distance" binding:"required,gt=0,lte=100000"`
	Unit         EnergyUnit `json:"unit"`
	PricePerUnit *float64   `json:"price_per_unit" binding:"omitempty,gt=0"`
	OtherCosts   float64    `json:"other_costs" binding:"gte=0"`
}

// TripEstimate projects the energy and cost of a trip from a vehicle's
// average consumption in one unit group.
type TripEstimate struct {
	VehicleID          string     `json:"vehicle_id"`
	Unit               EnergyUnit `json:"unit"`
	Distance           float64    `json:"distance"`
	AverageConsumption float64    `json:"average_consumption"`
	PricePerUnit       float64    `json:"price_per_unit"`
	EnergyNeeded       float64    `json:"energy_needed"`
	EnergyCost         float64    `json:"energy_cost"`
	OtherCosts         float64    `json:"other_costs"`
	TotalCost          float64    `json:"total_cost"`
	CostPerDistance    float64    `json:"cost_per_distance"`
}
