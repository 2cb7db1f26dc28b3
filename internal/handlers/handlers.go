package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"portfoliochat/internal/metrics"
	"portfoliochat/internal/models"
)

// ErrorHandler renders every error as {"error": code}. Handlers return
// *fiber.Error values; anything else is an internal error.
func ErrorHandler(c fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		status = e.Code
	}

	code := errorCode(status)
	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	if status != fiber.StatusNotFound {
		metrics.RecordError(code)
	}

	return jsonError(c, status, code)
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return models.ErrCodeBadRequest
	case fiber.StatusNotFound:
		return models.ErrCodeNotFound
	case fiber.StatusMethodNotAllowed:
		return models.ErrCodeMethodNotAllowed
	case fiber.StatusRequestEntityTooLarge:
		return models.ErrCodePayloadTooLarge
	case fiber.StatusTooManyRequests:
		return models.ErrCodeRateLimited
	default:
		return models.ErrCodeInternal
	}
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, code string) error {
	return c.Status(status).JSON(models.ErrorResponse{Error: code})
}
