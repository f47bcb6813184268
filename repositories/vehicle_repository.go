package repositories

import (
	"context"
	"errors"
	"fmt"

	"fueltrack-api/models"
	"fueltrack-api/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create inserts the vehicle and its declared energy types.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		energyTypes := vehicle.EnergyTypes
		vehicle.EnergyTypes = nil
		if err := tx.Create(vehicle).Error; err != nil {
			return fmt.Errorf("create vehicle: %w", err)
		}
		for i := range energyTypes {
			if energyTypes[i].ID == "" {
				energyTypes[i].ID = uuid.New().String()
			}
			energyTypes[i].VehicleID = vehicle.ID
		}
		if len(energyTypes) > 0 {
			if err := tx.Create(&energyTypes).Error; err != nil {
				return fmt.Errorf("create vehicle energy types: %w", err)
			}
		}
		vehicle.EnergyTypes = energyTypes
		return nil
	})
}

func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("EnergyTypes", func(db *gorm.DB) *gorm.DB { return db.Order("energy_type") }).
		First(&vehicle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle %s: %w", id, err)
	}
	return &vehicle, nil
}

// FindOwned loads a vehicle and checks that userID owns it.
func (r *VehicleRepository) FindOwned(ctx context.Context, userID, id string) (*models.Vehicle, error) {
	vehicle, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle.UserID != userID {
		return nil, utils.ErrVehicleForbidden
	}
	return vehicle, nil
}

func (r *VehicleRepository) ListByUser(ctx context.Context, userID string) ([]models.Vehicle, error) {
	vehicles := []models.Vehicle{}
	err := r.db.WithContext(ctx).
		Preload("EnergyTypes", func(db *gorm.DB) *gorm.DB { return db.Order("energy_type") }).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("list vehicles of user %s: %w", userID, err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Vehicle{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("update vehicle %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrVehicleNotFound
	}
	return nil
}

// Delete removes the vehicle with its entries, service records and energy types.
func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteVehicleChildren(tx, []string{id}); err != nil {
			return err
		}
		result := tx.Delete(&models.Vehicle{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("delete vehicle %s: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return utils.ErrVehicleNotFound
		}
		return nil
	})
}

func (r *VehicleRepository) AddEnergyType(ctx context.Context, vehicleID string, energyType models.EnergyType) (*models.VehicleEnergyType, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.VehicleEnergyType{}).
		Where("vehicle_id = ? AND energy_type = ?", vehicleID, energyType).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check energy type: %w", err)
	}
	if count > 0 {
		return nil, utils.ErrEnergyTypeExists
	}

	et := models.VehicleEnergyType{ID: uuid.New().String(), VehicleID: vehicleID, EnergyType: energyType}
	if err := r.db.WithContext(ctx).Create(&et).Error; err != nil {
		return nil, fmt.Errorf("add energy type: %w", err)
	}
	return &et, nil
}

// RemoveEnergyType refuses to remove a type that still has entries or is the
// vehicle's last declared type.
func (r *VehicleRepository) RemoveEnergyType(ctx context.Context, vehicleID string, energyType models.EnergyType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var declared []models.VehicleEnergyType
		if err := tx.Where("vehicle_id = ?", vehicleID).Find(&declared).Error; err != nil {
			return fmt.Errorf("list energy types: %w", err)
		}
		var target *models.VehicleEnergyType
		for i := range declared {
			if declared[i].EnergyType == energyType {
				target = &declared[i]
			}
		}
		if target == nil {
			return utils.ErrEnergyTypeNotFound
		}
		if len(declared) == 1 {
			return utils.ErrEnergyTypeDeleteFailed.WithMessage("A vehicle must keep at least one energy type")
		}

		entries, err := countEntriesByEnergyType(tx, vehicleID, energyType)
		if err != nil {
			return err
		}
		if entries > 0 {
			return utils.ErrEnergyTypeDeleteFailed.WithMessage("%d entries still use energy type %s", entries, energyType)
		}

		if err := tx.Delete(target).Error; err != nil {
			return fmt.Errorf("remove energy type: %w", err)
		}
		return nil
	})
}

// CountEntriesByEnergyType counts the vehicle's entries logged with energyType.
func (r *VehicleRepository) CountEntriesByEnergyType(ctx context.Context, vehicleID string, energyType models.EnergyType) (int64, error) {
	return countEntriesByEnergyType(r.db.WithContext(ctx), vehicleID, energyType)
}

func countEntriesByEnergyType(tx *gorm.DB, vehicleID string, energyType models.EnergyType) (int64, error) {
	var count int64
	err := tx.Model(&models.EnergyEntry{}).
		Where("vehicle_id = ? AND energy_type = ?", vehicleID, energyType).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count %s entries of vehicle %s: %w", energyType, vehicleID, err)
	}
	return count, nil
}

func deleteVehicleChildren(tx *gorm.DB, vehicleIDs []string) error {
	if len(vehicleIDs) == 0 {
		return nil
	}
	if err := tx.Where("vehicle_id IN ?", vehicleIDs).Delete(&models.EnergyEntry{}).Error; err != nil {
		return fmt.Errorf("delete energy entries: %w", err)
	}
	if err := tx.Where("vehicle_id IN ?", vehicleIDs).Delete(&models.ServiceRecord{}).Error; err != nil {
		return fmt.Errorf("delete service records: %w", err)
	}
	if err := tx.Where("vehicle_id IN ?", vehicleIDs).Delete(&models.VehicleEnergyType{}).Error; err != nil {
		return fmt.Errorf("delete vehicle energy types: %w", err)
	}
	return nil
}
