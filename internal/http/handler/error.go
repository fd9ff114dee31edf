package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"medportal/internal/backend"
	"medportal/internal/http/middleware"
	"medportal/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "VALIDATION_ERROR", "NOT_FOUND", "BACKEND_ERROR")
// - message: human-readable safe message
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// serviceError translates a service-layer error into the standard envelope.
// Backend-reported messages pass through verbatim so the user sees what the
// backend said; transport failures get a generic message.
func serviceError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", vErr.Error())
	}

	switch {
	case errors.Is(err, service.ErrIDRequired),
		errors.Is(err, service.ErrURLRequired),
		errors.Is(err, service.ErrNoFiles):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, service.ErrExamNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "exam not found")
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return writeError(c, fiber.StatusBadGateway, "BACKEND_ERROR", apiErr.Message)
	}
	return writeError(c, fiber.StatusBadGateway, "BACKEND_UNAVAILABLE", "backend is unreachable")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
