package services

import (
	"context"
	"errors"
	"log"
	"time"

	"leadtrack/internal/adapters/persistence/models"
	"leadtrack/internal/adapters/persistence/repositories"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Check-in errors
var (
	ErrCheckInNotFound = errors.New("check-in not found")
)

// CheckInService handles attendance check-ins
type CheckInService struct {
	checkInRepo repositories.CheckInRepository
}

// NewCheckInService creates a new check-in service
func NewCheckInService(checkInRepo repositories.CheckInRepository) *CheckInService {
	return &CheckInService{checkInRepo: checkInRepo}
}

// CheckInInput represents check-in input
type CheckInInput struct {
	Location  string           `json:"location"`
	Latitude  *decimal.Decimal `json:"latitude"`
	Longitude *decimal.Decimal `json:"longitude"`
}

// CheckIn records an attendance check-in for the employee. The check-in
// time is stamped server-side. Nothing stops a second check-in while one
// is still open; callers are expected to look up the active check-in first.
func (s *CheckInService) CheckIn(ctx context.Context, employeeID string, input *CheckInInput) (*models.CheckIn, error) {
	checkIn := &models.CheckIn{
		EmployeeID:  employeeID,
		CheckInTime: time.Now(),
		Location:    input.Location,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	}

	if err := s.checkInRepo.Create(ctx, checkIn); err != nil {
		return nil, err
	}

	log.Printf("✅ Employee %s checked in", employeeID)
	return checkIn, nil
}

// ActiveCheckIn returns the employee's open check-in, or nil when there
// is none
func (s *CheckInService) ActiveCheckIn(ctx context.Context, employeeID string) (*models.CheckIn, error) {
	checkIn, err := s.checkInRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return checkIn, nil
}

// CheckOut stamps the check-out time on a check-in
func (s *CheckInService) CheckOut(ctx context.Context, checkInID string) (*models.CheckIn, error) {
	checkIn, err := s.checkInRepo.SetCheckOut(ctx, checkInID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCheckInNotFound
		}
		return nil, err
	}

	log.Printf("✅ Employee %s checked out", checkIn.EmployeeID)
	return checkIn, nil
}
