package handler

import (
	"errors"

	autherror "github.com/Zughayyar/fin-stack-server/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// ErrorStatus maps a service error to the HTTP status and the message the
// client sees. Internal details never leak: anything unmapped becomes a
// plain 500.
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, autherror.ErrInvalidInput):
		return fiber.StatusBadRequest, "invalid input"
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrTokenMalformed),
		errors.Is(err, autherror.ErrTokenSignatureInvalid),
		errors.Is(err, autherror.ErrTokenExpired):
		return fiber.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, autherror.ErrForbidden):
		return fiber.StatusForbidden, "forbidden"
	case errors.Is(err, autherror.ErrNotFound):
		return fiber.StatusNotFound, "resource not found"
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return fiber.StatusConflict, "email already in use"
	default:
		return fiber.StatusInternalServerError, "internal server error"
	}
}

func RespondError(c *fiber.Ctx, err error) error {
	status, msg := ErrorStatus(err)
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
