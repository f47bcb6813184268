// File: /models/energy_entry.go
package models

import (
	"time"
)

// EnergyEntry is one refuelling or charging event of a vehicle.
type EnergyEntry struct {
	ID           string     `json:"id" gorm:"primaryKey;size:191"`
	VehicleID    string     `json:"vehicle_id" gorm:"not null;size:191;index:idx_entries_vehicle_date,priority:1"`
	Date         time.Time  `json:"date" gorm:"not null;index:idx_entries_vehicle_date,priority:2"`
	Mileage      float64    `json:"mileage" gorm:"not null;index:idx_entries_vehicle_date,priority:3"`
	EnergyType   EnergyType `json:"energy_type" gorm:"not null;size:20"`
	Quantity     float64    `json:"quantity" gorm:"not null"`
	Unit         EnergyUnit `json:"unit" gorm:"not null;size:20"`
	Cost         float64    `json:"cost" gorm:"not null;default:0"`
	PricePerUnit *float64   `json:"price_per_unit,omitempty"`
	Note         string     `json:"note" gorm:"size:500"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type EnergyEntryRequest struct {
	Date         time.Time  `json:"date" binding:"required"`
	Mileage      float64    `json:"mileage" binding:"gte=0"`
	EnergyType   EnergyType `json:"energy_type" binding:"required"`
	Quantity     float64    `json:"quantity" binding:"required,gt=0"`
	Unit         EnergyUnit `json:"unit" binding:"required"`
	Cost         float64    `json:"cost" binding:"gte=0"`
	PricePerUnit *float64   `json:"price_per_unit" binding:"omitempty,gt=0"`
	Note         string     `json:"note" binding:"max=500"`
}
