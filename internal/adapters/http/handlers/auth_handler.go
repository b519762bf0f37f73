package handlers

import (
	"errors"
	"log"
	"strings"
	"time"

	"leadtrack/internal/adapters/http/middleware"
	"leadtrack/internal/config"
	"leadtrack/internal/core/services"
	"leadtrack/internal/pkg/response"
	"leadtrack/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles employee authentication endpoints
type AuthHandler struct {
	authService  *services.AuthService
	sessionStore *session.Store
	cfg          *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, sessionStore *session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessionStore: sessionStore,
		cfg:          cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	EmployeeID   string `json:"employeeId"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
}

// Login handles employee login
// @Summary Employee login
// @Description Authenticate an employee and open a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /api/auth/employee/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	var fields []string
	if strings.TrimSpace(req.EmployeeID) == "" {
		fields = append(fields, "employeeId: Employee ID is required")
	}
	if len(strings.TrimSpace(req.MobileNumber)) < 10 {
		fields = append(fields, "mobileNumber: Valid mobile number is required")
	}
	if req.Password == "" {
		fields = append(fields, "password: Password is required")
	}
	if len(fields) > 0 {
		return response.ValidationError(c, fields)
	}

	employee, err := h.authService.Authenticate(
		c.Context(),
		strings.TrimSpace(req.EmployeeID),
		strings.TrimSpace(req.MobileNumber),
		req.Password,
	)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid credentials")
		}
		log.Printf("❌ Login error: %v", err)
		return response.InternalServerError(c, "Login failed")
	}

	sid, err := h.sessionStore.Create(c.Context(), employee)
	if err != nil {
		log.Printf("❌ Session create error: %v", err)
		return response.InternalServerError(c, "Login failed")
	}

	h.setSessionCookie(c, sid)

	return c.JSON(fiber.Map{
		"employee": employee,
		"message":  "Login successful",
	})
}

// Logout handles employee logout
// @Summary Employee logout
// @Description Clear the caller's session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/employee/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid, ok := c.Locals(middleware.LocalSessionID).(string); ok {
		if err := h.sessionStore.Destroy(c.Context(), sid); err != nil {
			log.Printf("❌ Session destroy error: %v", err)
		}
	}

	h.clearSessionCookie(c)

	return response.Message(c, "Logout successful")
}

// Current returns the session employee
// @Summary Current employee
// @Description Return the authenticated employee for the caller's session
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Employee
// @Failure 401 {object} response.ErrorBody
// @Router /api/auth/employee/current [get]
func (h *AuthHandler) Current(c *fiber.Ctx) error {
	employee, ok := middleware.EmployeeFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}
	return c.JSON(employee)
}

// setSessionCookie sets the opaque session ID cookie
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, sid string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(h.cfg.Session.TTL.Seconds()),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearSessionCookie clears the session cookie
func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
