package repositories

import (
	"context"
	"time"

	"leadtrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// leadRepository implements LeadRepository interface
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

// Create creates a new lead
func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// GetByID gets a lead by ID
func (r *leadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lead).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// ListByEmployee lists leads assigned to the employee with their client
// preloaded, newest first
func (r *leadRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*models.Lead, error) {
	var leads []*models.Lead
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("assigned_to = ?", employeeID).
		Order("created_at DESC").
		Find(&leads).Error
	return leads, err
}

// UpdateStatus sets the lead status and returns the updated lead
func (r *leadRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Lead, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// CountByStatus groups the employee's leads by status
func (r *leadRepository) CountByStatus(ctx context.Context, employeeID string) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Select("status, COUNT(*) as count").
		Where("assigned_to = ?", employeeID).
		Group("status").
		Scan(&counts).Error
	return counts, err
}

// ListDueFollowUps lists leads whose follow-up date has come due and
// that have not been contacted yet today
func (r *leadRepository) ListDueFollowUps(ctx context.Context) ([]*models.Lead, error) {
	now := time.Now()
	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	var leads []*models.Lead
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("next_follow_up IS NOT NULL AND next_follow_up <= ?", now).
		Where("last_contact_date IS NULL OR last_contact_date < ?", startOfDay).
		Order("next_follow_up ASC").
		Find(&leads).Error
	return leads, err
}
