// File: /models/vehicle.go
package models

import (
	"fmt"
	"time"
)

type Vehicle struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index"`
	Name      string    `json:"name" gorm:"size:100"`
	Brand     string    `json:"brand" gorm:"not null;size:100"`
	Model     string    `json:"model" gorm:"not null;size:100"`
	Year      int       `json:"year" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EnergyTypes []VehicleEnergyType `json:"energy_types" gorm:"foreignKey:VehicleID"`
	User        *User               `json:"-" gorm:"foreignKey:UserID"`
}

// VehicleEnergyType is an energy type declared as supported by a vehicle.
type VehicleEnergyType struct {
	ID         string     `json:"id" gorm:"primaryKey;size:191"`
	VehicleID  string     `json:"vehicle_id" gorm:"not null;size:191;uniqueIndex:idx_vehicle_energy_type"`
	EnergyType EnergyType `json:"energy_type" gorm:"not null;size:20;uniqueIndex:idx_vehicle_energy_type"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Supports reports whether t is declared on the vehicle.
func (v *Vehicle) Supports(t EnergyType) bool {
	for _, et := range v.EnergyTypes {
		if et.EnergyType == t {
			return true
		}
	}
	return false
}

// Label is the human readable name used in emails.
func (v *Vehicle) Label() string {
	if v.Name != "" {
		return v.Name
	}
	return fmt.Sprintf("%s %s (%d)", v.Brand, v.Model, v.Year)
}

type CreateVehicleRequest struct {
	Name        string       `json:"name" binding:"max=100"`
	Brand       string       `json:"brand" binding:"required,max=100"`
	Model       string       `json:"model" binding:"required,max=100"`
	Year        int          `json:"year" binding:"required,gte=1886,lte=2100"`
	EnergyTypes []EnergyType `json:"energy_types" binding:"required,min=1,dive,required"`
}

type UpdateVehicleRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Brand *string `json:"brand" binding:"omitempty,max=100"`
	Model *string `json:"model" binding:"omitempty,max=100"`
	Year  *int    `json:"year" binding:"omitempty,gte=1886,lte=2100"`
}

type AddEnergyTypeRequest struct {
	EnergyType EnergyType `json:"energy_type" binding:"required"`
}
