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

type EnergyEntryRepository struct {
	db *gorm.DB
}

func NewEnergyEntryRepository(db *gorm.DB) *EnergyEntryRepository {
	return &EnergyEntryRepository{db: db}
}

func (r *EnergyEntryRepository) Create(ctx context.Context, entry *models.EnergyEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create energy entry: %w", err)
	}
	return nil
}

// FindByID returns the entry only when it belongs to vehicleID.
func (r *EnergyEntryRepository) FindByID(ctx context.Context, vehicleID, id string) (*models.EnergyEntry, error) {
	var entry models.EnergyEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ? AND vehicle_id = ?", id, vehicleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find energy entry %s: %w", id, err)
	}
	return &entry, nil
}

// ListByVehicle returns one page of entries, newest first.
func (r *EnergyEntryRepository) ListByVehicle(ctx context.Context, vehicleID string, page, limit int) ([]models.EnergyEntry, int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.EnergyEntry{}).Where("vehicle_id = ?", vehicleID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count energy entries: %w", err)
	}

	entries := []models.EnergyEntry{}
	err := query.
		Order("date DESC, mileage DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list energy entries: %w", err)
	}
	return entries, total, nil
}

// AllByVehicle returns every entry of a vehicle ordered by date and mileage.
func (r *EnergyEntryRepository) AllByVehicle(ctx context.Context, vehicleID string) ([]models.EnergyEntry, error) {
	entries := []models.EnergyEntry{}
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date, mileage, id").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load entries of vehicle %s: %w", vehicleID, err)
	}
	return entries, nil
}

// AllByVehicles loads the entries of several vehicles in one query.
func (r *EnergyEntryRepository) AllByVehicles(ctx context.Context, vehicleIDs []string) ([]models.EnergyEntry, error) {
	entries := []models.EnergyEntry{}
	if len(vehicleIDs) == 0 {
		return entries, nil
	}
	err := r.db.WithContext(ctx).
		Where("vehicle_id IN ?", vehicleIDs).
		Order("vehicle_id, date, mileage, id").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load entries of %d vehicles: %w", len(vehicleIDs), err)
	}
	return entries, nil
}

// FindNeighbours returns the closest entries at-or-before and after date,
// ignoring excludeID. Either result may be nil.
func (r *EnergyEntryRepository) FindNeighbours(ctx context.Context, vehicleID string, date time.Time, excludeID string) (*models.EnergyEntry, *models.EnergyEntry, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID)
		if excludeID != "" {
			q = q.Where("id <> ?", excludeID)
		}
		return q
	}

	var previous, next []models.EnergyEntry
	if err := base().Where("date <= ?", date).Order("date DESC, mileage DESC").Limit(1).Find(&previous).Error; err != nil {
		return nil, nil, fmt.Errorf("find previous entry: %w", err)
	}
	if err := base().Where("date > ?", date).Order("date, mileage").Limit(1).Find(&next).Error; err != nil {
		return nil, nil, fmt.Errorf("find next entry: %w", err)
	}

	var prevEntry, nextEntry *models.EnergyEntry
	if len(previous) > 0 {
		prevEntry = &previous[0]
	}
	if len(next) > 0 {
		nextEntry = &next[0]
	}
	return prevEntry, nextEntry, nil
}

func (r *EnergyEntryRepository) Update(ctx context.Context, entry *models.EnergyEntry) error {
	result := r.db.WithContext(ctx).Model(entry).Select("*").Omit("id", "vehicle_id", "created_at").Updates(entry)
	if result.Error != nil {
		return fmt.Errorf("update energy entry %s: %w", entry.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrEntryNotFound
	}
	return nil
}

func (r *EnergyEntryRepository) Delete(ctx context.Context, vehicleID, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.EnergyEntry{}, "id = ? AND vehicle_id = ?", id, vehicleID)
	if result.Error != nil {
		return fmt.Errorf("delete energy entry %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrEntryNotFound
	}
	return nil
}
