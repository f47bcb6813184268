// File: /models/service_record.go
package models

import (
	"time"
)

// ServiceRecord is a maintenance or repair performed on a vehicle.
type ServiceRecord struct {
	ID                 string     `json:"id" gorm:"primaryKey;size:191"`
	VehicleID          string     `json:"vehicle_id" gorm:"not null;size:191;index"`
	Date               time.Time  `json:"date" gorm:"not null"`
	Mileage            float64    `json:"mileage" gorm:"not null"`
	ServiceType        string     `json:"service_type" gorm:"not null;size:100"` // "oil_change", "tires", "inspection", ...
	Description        string     `json:"description" gorm:"size:1000"`
	Cost               float64    `json:"cost" gorm:"not null;default:0"`
	NextServiceDate    *time.Time `json:"next_service_date,omitempty" gorm:"index"`
	NextServiceMileage *float64   `json:"next_service_mileage,omitempty"`
	ReminderSentAt     *time.Time `json:"reminder_sent_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	Vehicle *Vehicle `json:"-" gorm:"foreignKey:VehicleID"`
}

type ServiceRecordRequest struct {
	Date               time.Time  `json:"date" binding:"required"`
	Mileage            float64    `json:"mileage" binding:"gte=0"`
	ServiceType        string     `json:"service_type" binding:"required,max=100"`
	Description        string     `json:"description" binding:"max=1000"`
	Cost               float64    `json:"cost" binding:"gte=0"`
	NextServiceDate    *time.Time `json:"next_service_date"`
	NextServiceMileage *float64   `json:"next_service_mileage" binding:"omitempty,gte=0"`
}

// ServiceReminder is a due service record joined with its vehicle owner.
type ServiceReminder struct {
	Record  ServiceRecord
	Vehicle Vehicle
	User    User
}
