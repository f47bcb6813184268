// File: /models/stats.go
package models

import (
	"time"
)

// EnergyUnitStats aggregates all entries of one vehicle logged in the same unit.
type EnergyUnitStats struct {
	Unit                EnergyUnit   `json:"unit"`
	EnergyTypes         []EnergyType `json:"energy_types"`
	EntryCount          int          `json:"entry_count"`
	TotalQuantity       float64      `json:"total_quantity"`
	TotalCost           float64      `json:"total_cost"`
	AveragePricePerUnit float64      `json:"average_price_per_unit"`
	AverageConsumption  float64      `json:"average_consumption"`  // quantity per 100 distance units
	AverageCostPer100   float64      `json:"average_cost_per_100"` // AverageConsumption * AveragePricePerUnit
	ConsumptionSamples  int          `json:"consumption_samples"`
	Distance            float64      `json:"distance"`
	CostPerDistance     float64      `json:"cost_per_distance"`
	FirstDate           *time.Time   `json:"first_date,omitempty"`
	LastDate            *time.Time   `json:"last_date,omitempty"`
}

type VehicleStats struct {
	VehicleID    string            `json:"vehicle_id"`
	TotalEntries int               `json:"total_entries"`
	TotalCost    float64           `json:"total_cost"`
	Groups       []EnergyUnitStats `json:"groups"`
}

type UnitQuantity struct {
	Unit     EnergyUnit `json:"unit"`
	Quantity float64    `json:"quantity"`
}

type DashboardStats struct {
	VehicleCount   int            `json:"vehicle_count"`
	TotalEntries   int            `json:"total_entries"`
	TotalCost      float64        `json:"total_cost"`
	TotalQuantity  float64        `json:"total_quantity"`
	QuantityByUnit []UnitQuantity `json:"quantity_by_unit"`
	Vehicles       []VehicleStats `json:"vehicles"`
}
