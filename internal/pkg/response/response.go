package response

import "github.com/gofiber/fiber/v2"

// ErrorBody is the JSON body returned for every failed request.
// Errors carries the failing fields for validation failures.
type ErrorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// Message sends a 200 response carrying only a message
func Message(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Message: message})
}

// ValidationError sends a 400 response enumerating the failing fields
func ValidationError(c *fiber.Ctx, fields []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{
		Message: "Validation error",
		Errors:  fields,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
