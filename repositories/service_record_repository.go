package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fueltrack-api/models"
	"fueltrack-api/utils"

	"gorm.io/gorm"
)

type ServiceRecordRepository struct {
	db *gorm.DB
}

func NewServiceRecordRepository(db *gorm.DB) *ServiceRecordRepository {
	return &ServiceRecordRepository{db: db}
}

func (r *ServiceRecordRepository) Create(ctx context.Context, record *models.ServiceRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create service record: %w", err)
	}
	return nil
}

func (r *ServiceRecordRepository) FindByID(ctx context.Context, vehicleID, id string) (*models.ServiceRecord, error) {
	var record models.ServiceRecord
	err := r.db.WithContext(ctx).First(&record, "id = ? AND vehicle_id = ?", id, vehicleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service record %s: %w", id, err)
	}
	return &record, nil
}

func (r *ServiceRecordRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]models.ServiceRecord, error) {
	records := []models.ServiceRecord{}
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date DESC, mileage DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list service records: %w", err)
	}
	return records, nil
}

func (r *ServiceRecordRepository) Update(ctx context.Context, record *models.ServiceRecord) error {
	result := r.db.WithContext(ctx).Model(record).Select("*").Omit("id", "vehicle_id", "created_at").Updates(record)
	if result.Error != nil {
		return fmt.Errorf("update service record %s: %w", record.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRecordRepository) Delete(ctx context.Context, vehicleID, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.ServiceRecord{}, "id = ? AND vehicle_id = ?", id, vehicleID)
	if result.Error != nil {
		return fmt.Errorf("delete service record %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrServiceNotFound
	}
	return nil
}

// DueForReminder returns records whose next service date is before the given
// time and whose owner has not been reminded yet. Vehicles and owners are
// preloaded, so the query count does not grow with the number of records.
func (r *ServiceRecordRepository) DueForReminder(ctx context.Context, before time.Time) ([]models.ServiceReminder, error) {
	var records []models.ServiceRecord
	err := r.db.WithContext(ctx).
		Preload("Vehicle.User").
		Where("next_service_date IS NOT NULL AND next_service_date <= ? AND reminder_sent_at IS NULL", before).
		Order("next_service_date").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("find due service records: %w", err)
	}

	reminders := make([]models.ServiceReminder, 0, len(records))
	for _, record := range records {
		if record.Vehicle == nil || record.Vehicle.User == nil {
			continue
		}
		vehicle := *record.Vehicle
		user := *vehicle.User
		record.Vehicle = nil
		vehicle.User = nil
		reminders = append(reminders, models.ServiceReminder{Record: record, Vehicle: vehicle, User: user})
	}
	return reminders, nil
}

func (r *ServiceRecordRepository) MarkReminded(ctx context.Context, id string, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&models.ServiceRecord{}).Where("id = ?", id).Update("reminder_sent_at", at).Error
	if err != nil {
		return fmt.Errorf("mark service record %s reminded: %w", id, err)
	}
	return nil
}
