package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/cycleadvisor/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps service sentinels onto status codes. Anything unknown is
// logged and reported as a 500 with fallback as the message.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, services.ErrInsufficientData):
		return apiError(c, fiber.StatusUnprocessableEntity, "insufficient cycle data")
	case errors.Is(err, services.ErrInvalidRecord),
		errors.Is(err, services.ErrInvalidPHIScore),
		errors.Is(err, services.ErrInvalidDisplayName):
		return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrInvalidShareToken):
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired share token")
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg(fallback)
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}
}

func parseUserID(c *fiber.Ctx) (uint, bool) {
	raw := strings.TrimSpace(c.Params("id"))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
