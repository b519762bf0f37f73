package handlers

import (
	"errors"
	"log"
	"strings"

	"leadtrack/internal/core/services"
	"leadtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles employee management endpoints.
// Note: these routes are gated on a valid session only — the role field
// is not checked server-side, matching the UI-only gating of the source
// system.
type AdminHandler struct {
	authService *services.AuthService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(authService *services.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

// ListEmployees returns all employee accounts
// @Summary List employees
// @Description List all employee accounts
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Employee
// @Router /api/admin/employees [get]
func (h *AdminHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.authService.ListEmployees(c.Context())
	if err != nil {
		log.Printf("❌ Error fetching employees: %v", err)
		return response.InternalServerError(c, "Failed to fetch employees")
	}

	return c.JSON(employees)
}

// CreateEmployee registers a new employee account
// @Summary Create employee
// @Description Register a new employee account
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body services.CreateEmployeeInput true "Employee data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /api/admin/employees [post]
func (h *AdminHandler) CreateEmployee(c *fiber.Ctx) error {
	var input services.CreateEmployeeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var fields []string
	if strings.TrimSpace(input.EmployeeID) == "" {
		fields = append(fields, "employeeId: required")
	}
	if len(strings.TrimSpace(input.MobileNumber)) < 10 {
		fields = append(fields, "mobileNumber: valid mobile number is required")
	}
	if input.Password == "" {
		fields = append(fields, "password: required")
	}
	if strings.TrimSpace(input.Branch) == "" {
		fields = append(fields, "branch: required")
	}
	if len(fields) > 0 {
		return response.ValidationError(c, fields)
	}

	input.EmployeeID = strings.TrimSpace(input.EmployeeID)
	input.MobileNumber = strings.TrimSpace(input.MobileNumber)
	input.Branch = strings.TrimSpace(input.Branch)

	employee, err := h.authService.CreateEmployee(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeAlreadyExists):
			return response.Conflict(c, "Employee ID already registered")
		case errors.Is(err, services.ErrWeakPassword):
			return response.ValidationError(c, []string{"password: must be at least 6 characters"})
		default:
			log.Printf("❌ Error creating employee: %v", err)
			return response.InternalServerError(c, "Failed to create employee")
		}
	}

	return c.JSON(fiber.Map{"employee": employee})
}

// DeleteEmployee removes an employee account
// @Summary Delete employee
// @Description Hard delete an employee account
// @Tags Admin
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorBody
// @Router /api/admin/employees/{id} [delete]
func (h *AdminHandler) DeleteEmployee(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.authService.DeleteEmployee(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return response.NotFound(c, "Employee not found")
		}
		log.Printf("❌ Error deleting employee: %v", err)
		return response.InternalServerError(c, "Failed to delete employee")
	}

	return response.Message(c, "Employee deleted successfully")
}
