package services

import (
	"context"
	"errors"
	"log"

	"leadtrack/internal/adapters/persistence/models"
	"leadtrack/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Lead errors
var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

// LeadService handles the lead pipeline
type LeadService struct {
	leadRepo repositories.LeadRepository
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repositories.LeadRepository) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

// ListLeads lists leads assigned to the employee, each with its client
func (s *LeadService) ListLeads(ctx context.Context, employeeID string) ([]*models.Lead, error) {
	return s.leadRepo.ListByEmployee(ctx, employeeID)
}

// UpdateStatus moves a lead to the given status. The pipeline is a flat
// status field: any status may move to any other.
func (s *LeadService) UpdateStatus(ctx context.Context, leadID, status string) (*models.Lead, error) {
	if !models.IsValidLeadStatus(status) {
		return nil, ErrInvalidLeadStatus
	}

	lead, err := s.leadRepo.UpdateStatus(ctx, leadID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	log.Printf("✅ Lead %s moved to %s", lead.ID, lead.Status)
	return lead, nil
}

// Statistics groups the employee's leads by status. Every known status
// appears in the result, unseen ones as zero, plus a "total" key equal
// to the sum of all counts. Recomputed fresh on every call.
func (s *LeadService) Statistics(ctx context.Context, employeeID string) (map[string]int64, error) {
	counts, err := s.leadRepo.CountByStatus(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]int64, len(models.LeadStatuses)+1)
	for _, status := range models.LeadStatuses {
		stats[status] = 0
	}

	var total int64
	for _, row := range counts {
		if _, known := stats[row.Status]; known {
			stats[row.Status] = row.Count
		}
		total += row.Count
	}
	stats["total"] = total

	return stats, nil
}
