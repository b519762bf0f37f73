package handlers

import (
	"errors"
	"log"

	"leadtrack/internal/adapters/http/middleware"
	"leadtrack/internal/core/services"
	"leadtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LeadHandler handles lead pipeline endpoints
type LeadHandler struct {
	leadService *services.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// List returns the caller's leads with their clients
// @Summary List leads
// @Description List leads assigned to the authenticated employee
// @Tags Leads
// @Produce json
// @Success 200 {array} models.Lead
// @Router /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	employee, ok := middleware.EmployeeFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Employee authentication required")
	}

	leads, err := h.leadService.ListLeads(c.Context(), employee.ID)
	if err != nil {
		log.Printf("❌ Error fetching leads: %v", err)
		return response.InternalServerError(c, "Failed to fetch leads")
	}

	return c.JSON(leads)
}

// Statistics returns the caller's per-status lead counts
// @Summary Lead statistics
// @Description Per-status lead counts for the authenticated employee, including total
// @Tags Leads
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /api/leads/statistics [get]
func (h *LeadHandler) Statistics(c *fiber.Ctx) error {
	employee, ok := middleware.EmployeeFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Employee authentication required")
	}

	stats, err := h.leadService.Statistics(c.Context(), employee.ID)
	if err != nil {
		log.Printf("❌ Error fetching lead statistics: %v", err)
		return response.InternalServerError(c, "Failed to fetch lead statistics")
	}

	return c.JSON(stats)
}

// UpdateStatusRequest represents status update request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves a lead to a new pipeline status
// @Summary Update lead status
// @Description Set the pipeline status of a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} models.Lead
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/leads/{id}/status [patch]
func (h *LeadHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Status == "" {
		return response.ValidationError(c, []string{"status: required"})
	}

	lead, err := h.leadService.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLeadStatus):
			return response.BadRequest(c, "Invalid lead status")
		case errors.Is(err, services.ErrLeadNotFound):
			return response.NotFound(c, "Lead not found")
		default:
			log.Printf("❌ Error updating lead status: %v", err)
			return response.InternalServerError(c, "Failed to update lead status")
		}
	}

	return c.JSON(lead)
}
