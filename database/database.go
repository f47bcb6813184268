// File: /database/database.go
package database

import (
	"fmt"
	"time"

	"fueltrack-api/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Initialize opens the database for the given driver ("mysql" or "sqlite").
func Initialize(driver, databaseURL, logLevel string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(databaseURL)
	case "sqlite":
		dialector = sqlite.Open(databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(gormLogLevel(logLevel)),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug", "trace":
		return logger.Info
	case "silent":
		return logger.Silent
	default:
		return logger.Warn
	}
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.VehicleEnergyType{},
		&models.EnergyEntry{},
		&models.ServiceRecord{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedData creates a demo account with one combustion car and one EV. It is a
// no-op when the demo user already exists.
func SeedData(db *gorm.DB) error {
	const demoEmail = "demo@fueltrack.local"

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", demoEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check seed user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := models.User{ID: uuid.New().String(), Name: "Demo Driver", Email: demoEmail, Password: string(hashed)}
	car := models.Vehicle{ID: uuid.New().String(), UserID: user.ID, Brand: "Skoda", Model: "Octavia", Year: 2017, Name: "Family car"}
	ev := models.Vehicle{ID: uuid.New().String(), UserID: user.ID, Brand: "Nissan", Model: "Leaf", Year: 2021}

	start := time.Date(2024, time.January, 6, 9, 0, 0, 0, time.UTC)
	price := func(v float64) *float64 { return &v }

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := tx.Create(&[]models.Vehicle{car, ev}).Error; err != nil {
			return err
		}
		energyTypes := []models.VehicleEnergyType{
			{ID: uuid.New().String(), VehicleID: car.ID, EnergyType: models.EnergyGasoline},
			{ID: uuid.New().String(), VehicleID: car.ID, EnergyType: models.EnergyDiesel},
			{ID: uuid.New().String(), VehicleID: ev.ID, EnergyType: models.EnergyElectric},
		}
		if err := tx.Create(&energyTypes).Error; err != nil {
			return err
		}

		var entries []models.EnergyEntry
		for i := 0; i < 6; i++ {
			liters := 38.0 + float64(i%3)
			entries = append(entries, models.EnergyEntry{
				ID:           uuid.New().String(),
				VehicleID:    car.ID,
				Date:         start.AddDate(0, 0, 14*i),
				Mileage:      84000 + float64(i)*610,
				EnergyType:   models.EnergyGasoline,
				Quantity:     liters,
				Unit:         models.UnitLiter,
				Cost:         liters * 1.72,
				PricePerUnit: price(1.72),
			})
			kwh := 28.0 + float64(i)
			entries = append(entries, models.EnergyEntry{
				ID:           uuid.New().String(),
				VehicleID:    ev.ID,
				Date:         start.AddDate(0, 0, 10*i),
				Mileage:      12000 + float64(i)*180,
				EnergyType:   models.EnergyElectric,
				Quantity:     kwh,
				Unit:         models.UnitKilowattHour,
				Cost:         kwh * 0.31,
				PricePerUnit: price(0.31),
			})
		}
		if err := tx.Create(&entries).Error; err != nil {
			return err
		}

		next := start.AddDate(1, 0, 0)
		service := models.ServiceRecord{
			ID:              uuid.New().String(),
			VehicleID:       car.ID,
			Date:            start,
			Mileage:         84000,
			ServiceType:     "oil_change",
			Description:     "Oil and filter",
			Cost:            129.90,
			NextServiceDate: &next,
		}
		if err := tx.Create(&service).Error; err != nil {
			return err
		}

		log.WithField("email", demoEmail).Info("Database seeded with demo data")
		return nil
	})
}
