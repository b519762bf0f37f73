package repositories

import (
	"context"

	"leadtrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// clientRepository implements ClientRepository interface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create creates a new client
func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// GetByID gets a client by ID
func (r *clientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// ListByEmployee lists clients created by the employee, newest first
func (r *clientRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*models.Client, error) {
	var clients []*models.Client
	err := r.db.WithContext(ctx).
		Where("created_by = ?", employeeID).
		Order("created_at DESC").
		Find(&clients).Error
	return clients, err
}
