package handlers

import (
	"errors"
	"log"

	"leadtrack/internal/adapters/http/middleware"
	"leadtrack/internal/core/services"
	"leadtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CheckInHandler handles attendance endpoints
type CheckInHandler struct {
	checkInService *services.CheckInService
}

// NewCheckInHandler creates a new check-in handler
func NewCheckInHandler(checkInService *services.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService}
}

// Create records a check-in for the caller
// @Summary Check in
// @Description Record an attendance check-in for the authenticated employee
// @Tags CheckIns
// @Accept json
// @Produce json
// @Param body body services.CheckInInput true "Check-in data"
// @Success 200 {object} models.CheckIn
// @Router /api/checkins [post]
func (h *CheckInHandler) Create(c *fiber.Ctx) error {
	employee, ok := middleware.EmployeeFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Employee authentication required")
	}

	var input services.CheckInInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	checkIn, err := h.checkInService.CheckIn(c.Context(), employee.ID, &input)
	if err != nil {
		log.Printf("❌ Error creating check-in: %v", err)
		return response.InternalServerError(c, "Failed to check in")
	}

	return c.JSON(checkIn)
}

// Active returns the caller's open check-in, or null when none exists
// @Summary Active check-in
// @Description Return the authenticated employee's open check-in
// @Tags CheckIns
// @Produce json
// @Success 200 {object} models.CheckIn
// @Router /api/checkins/active [get]
func (h *CheckInHandler) Active(c *fiber.Ctx) error {
	employee, ok := middleware.EmployeeFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Employee authentication required")
	}

	checkIn, err := h.checkInService.ActiveCheckIn(c.Context(), employee.ID)
	if err != nil {
		log.Printf("❌ Error fetching active check-in: %v", err)
		return response.InternalServerError(c, "Failed to fetch active check-in")
	}

	return c.JSON(checkIn)
}

// CheckOut closes a check-in
// @Summary Check out
// @Description Set the check-out time on a check-in
// @Tags CheckIns
// @Produce json
// @Param id path string true "Check-in ID"
// @Success 200 {object} models.CheckIn
// @Failure 404 {object} response.ErrorBody
// @Router /api/checkins/{id}/checkout [patch]
func (h *CheckInHandler) CheckOut(c *fiber.Ctx) error {
	id := c.Params("id")

	checkIn, err := h.checkInService.CheckOut(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCheckInNotFound) {
			return response.NotFound(c, "Check-in not found")
		}
		log.Printf("❌ Error checking out: %v", err)
		return response.InternalServerError(c, "Failed to check out")
	}

	return c.JSON(checkIn)
}
