package repositories

import (
	"context"

	"leadtrack/internal/adapters/persistence/models"
)

// EmployeeRepository defines employee repository interface
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
	GetActiveByCredentials(ctx context.Context, employeeID, mobileNumber string) (*models.Employee, error)
	List(ctx context.Context) ([]*models.Employee, error)
	Delete(ctx context.Context, id string) error
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
}

// ClientRepository defines client repository interface
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id string) (*models.Client, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*models.Client, error)
}

// StatusCount is one row of the per-status lead grouping.
type StatusCount struct {
	Status string
	Count  int64
}

// LeadRepository defines lead repository interface
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*models.Lead, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Lead, error)
	CountByStatus(ctx context.Context, employeeID string) ([]StatusCount, error)
	ListDueFollowUps(ctx context.Context) ([]*models.Lead, error)
}

// CheckInRepository defines check-in repository interface
type CheckInRepository interface {
	Create(ctx context.Context, checkIn *models.CheckIn) error
	GetActiveByEmployee(ctx context.Context, employeeID string) (*models.CheckIn, error)
	SetCheckOut(ctx context.Context, id string) (*models.CheckIn, error)
}
