package helper

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the wire shape of every response: {code, message, result}.
type Envelope struct {
	Code       int         `json:"code"`
	Message    string      `json:"message,omitempty"`
	Result     any         `json:"result,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Errors     any         `json:"errors,omitempty"`
}

func respond(c *fiber.Ctx, status int, message string, result any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(status).JSON(Envelope{
		Code:    CodeSuccess,
		Message: message,
		Result:  result,
	})
}

// JsonOK: generic success (GET detail, actions)
func JsonOK(c *fiber.Ctx, message string, result any) error {
	return respond(c, fiber.StatusOK, message, result)
}

// JsonCreated: POST create
func JsonCreated(c *fiber.Ctx, message string, result any) error {
	if strings.TrimSpace(message) == "" {
		message = "created"
	}
	return respond(c, fiber.StatusCreated, message, result)
}

// JsonUpdated: PUT/PATCH
func JsonUpdated(c *fiber.Ctx, message string, result any) error {
	if strings.TrimSpace(message) == "" {
		message = "updated"
	}
	return respond(c, fiber.StatusOK, message, result)
}

// JsonDeleted: DELETE
func JsonDeleted(c *fiber.Ctx, message string, result any) error {
	if strings.TrimSpace(message) == "" {
		message = "deleted"
	}
	return respond(c, fiber.StatusOK, message, result)
}

// JsonList: list + pagination
func JsonList(c *fiber.Ctx, message string, result any, p Pagination) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	enrichPagination(&p, result)
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Code:       CodeSuccess,
		Message:    message,
		Result:     result,
		Pagination: &p,
	})
}

// JsonError renders any error as the envelope of its catalogued kind.
// Uncategorized errors are logged and their cause is not exposed.
func JsonError(c *fiber.Ctx, err error) error {
	ae := AsAppError(err)
	if ae.Code == ErrUncategorized.Code {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	}
	return c.Status(ae.Status).JSON(Envelope{
		Code:    ae.Code,
		Message: ae.Message,
	})
}

// JsonValidationError: validator failures (400) with per-field tags
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string]string) error {
	return c.Status(ErrInvalidKey.Status).JSON(Envelope{
		Code:    ErrInvalidKey.Code,
		Message: "validation failed",
		Errors:  fieldErrors,
	})
}

// FiberErrorHandler keeps errors returned from handlers and middlewares inside the envelope.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	return JsonError(c, err)
}
