package middleware

import (
	"leadtrack/internal/adapters/persistence/models"
	"leadtrack/internal/pkg/response"
	"leadtrack/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the name of the cookie carrying the opaque session ID
const SessionCookie = "session_id"

// Locals keys set by RequireSession
const (
	LocalEmployee  = "employee"
	LocalSessionID = "sessionID"
)

// RequireSession resolves the caller's employee from the session store.
// Requests without a live session never reach the data layer.
func RequireSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(SessionCookie)
		if sid == "" {
			return response.Unauthorized(c, "Employee authentication required")
		}

		employee, err := store.Get(c.Context(), sid)
		if err != nil {
			// Expired and unknown sessions look the same to the caller
			return response.Unauthorized(c, "Employee authentication required")
		}

		c.Locals(LocalEmployee, employee)
		c.Locals(LocalSessionID, sid)

		return c.Next()
	}
}

// EmployeeFromContext returns the session employee set by RequireSession
func EmployeeFromContext(c *fiber.Ctx) (*models.Employee, bool) {
	employee, ok := c.Locals(LocalEmployee).(*models.Employee)
	return employee, ok
}
