package repositories

import (
	"context"
	"time"

	"leadtrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// checkInRepository implements CheckInRepository interface
type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository creates a new check-in repository
func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

// Create creates a new check-in
func (r *checkInRepository) Create(ctx context.Context, checkIn *models.CheckIn) error {
	return r.db.WithContext(ctx).Create(checkIn).Error
}

// GetActiveByEmployee returns the most recent check-in without a
// check-out time, or gorm.ErrRecordNotFound when none exists
func (r *checkInRepository) GetActiveByEmployee(ctx context.Context, employeeID string) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND check_out_time IS NULL", employeeID).
		Order("check_in_time DESC").
		First(&checkIn).Error
	if err != nil {
		return nil, err
	}
	return &checkIn, nil
}

// SetCheckOut stamps the check-out time and returns the updated check-in
func (r *checkInRepository) SetCheckOut(ctx context.Context, id string) (*models.CheckIn, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.CheckIn{}).
		Where("id = ?", id).
		Update("check_out_time", now)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var checkIn models.CheckIn
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&checkIn).Error; err != nil {
		return nil, err
	}
	return &checkIn, nil
}
