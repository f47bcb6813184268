package repositories

import (
	"context"
	"errors"
	"fmt"

	"fueltrack-api/models"
	"fueltrack-api/utils"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// EmailTaken reports whether another user than excludeID owns email.
func (r *UserRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("update user %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

// Delete removes the user together with all vehicles and their records.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicleIDs []string
		if err := tx.Model(&models.Vehicle{}).Where("user_id = ?", id).Pluck("id", &vehicleIDs).Error; err != nil {
			return fmt.Errorf("list vehicles of user %s: %w", id, err)
		}
		if err := deleteVehicleChildren(tx, vehicleIDs); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Vehicle{}).Error; err != nil {
			return fmt.Errorf("delete vehicles of user %s: %w", id, err)
		}
		result := tx.Delete(&models.User{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("delete user %s: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return utils.ErrUserNotFound
		}
		return nil
	})
}
