package services

import (
	"context"
	"errors"
	"log"

	"leadtrack/internal/adapters/persistence/models"
	"leadtrack/internal/adapters/persistence/repositories"
	"leadtrack/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeAlreadyExists = errors.New("employee id already registered")
	ErrWeakPassword          = errors.New("password does not meet requirements")
)

// AuthService handles employee authentication and administration
type AuthService struct {
	employeeRepo repositories.EmployeeRepository
}

// NewAuthService creates a new auth service
func NewAuthService(employeeRepo repositories.EmployeeRepository) *AuthService {
	return &AuthService{employeeRepo: employeeRepo}
}

// Authenticate verifies an employee's credentials. The employee must match
// on employee ID and mobile number, be active, and present the right
// password. Every failure collapses to ErrInvalidCredentials so callers
// cannot tell which part was wrong.
func (s *AuthService) Authenticate(ctx context.Context, employeeID, mobileNumber, plainPassword string) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetActiveByCredentials(ctx, employeeID, mobileNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(plainPassword, employee.Password) {
		return nil, ErrInvalidCredentials
	}

	log.Printf("✅ Employee logged in: %s", employee.EmployeeID)
	return employee, nil
}

// CreateEmployeeInput represents employee creation input
type CreateEmployeeInput struct {
	EmployeeID   string `json:"employeeId"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	Branch       string `json:"branch"`
}

// CreateEmployee registers a new employee account with a hashed password
func (s *AuthService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*models.Employee, error) {
	exists, err := s.employeeRepo.ExistsByEmployeeID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmployeeAlreadyExists
	}

	if !password.ValidatePassword(input.Password) {
		return nil, ErrWeakPassword
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = "Executive"
	}

	employee := &models.Employee{
		EmployeeID:   input.EmployeeID,
		MobileNumber: input.MobileNumber,
		Password:     hashedPassword,
		Role:         role,
		Branch:       input.Branch,
		IsActive:     true,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	log.Printf("✅ Employee created: %s (%s)", employee.EmployeeID, employee.Role)
	return employee, nil
}

// ListEmployees lists all employees
func (s *AuthService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// DeleteEmployee hard deletes an employee account
func (s *AuthService) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}

	log.Printf("✅ Employee deleted: %s", id)
	return nil
}
