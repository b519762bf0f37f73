package services

import (
	"context"
	"log"

	"leadtrack/internal/adapters/persistence/models"
	"leadtrack/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// ClientService handles client capture
type ClientService struct {
	db         *gorm.DB
	clientRepo repositories.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(db *gorm.DB, clientRepo repositories.ClientRepository) *ClientService {
	return &ClientService{db: db, clientRepo: clientRepo}
}

// CreateClient persists a captured client and its tracking lead in one
// transaction. The lead starts green and is assigned to the creating
// employee; a failed lead insert rolls the client back.
func (s *ClientService) CreateClient(ctx context.Context, client *models.Client, employeeID string) (*models.Client, *models.Lead, error) {
	client.CreatedBy = employeeID

	lead := &models.Lead{
		Status:     models.LeadStatusGreen,
		AssignedTo: employeeID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(client).Error; err != nil {
			return err
		}
		lead.ClientID = client.ID
		return tx.Create(lead).Error
	})
	if err != nil {
		return nil, nil, err
	}

	log.Printf("✅ Client captured: %s (lead %s)", client.ID, lead.ID)
	return client, lead, nil
}

// ListClients lists clients captured by the employee
func (s *ClientService) ListClients(ctx context.Context, employeeID string) ([]*models.Client, error) {
	return s.clientRepo.ListByEmployee(ctx, employeeID)
}
