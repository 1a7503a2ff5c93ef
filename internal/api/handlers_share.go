package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func (handler *Handler) ShareSummary(c *fiber.Ctx) error {
	userID, ok := parseUserID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	if _, err := handler.accounts.RequireUser(c.UserContext(), userID); err != nil {
		return serviceError(c, err, "failed to share summary")
	}

	token, expiresAt, err := handler.shares.IssueToken(userID)
	if err != nil {
		return serviceError(c, err, "failed to share summary")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":     token,
		"expiresAt": expiresAt,
		"path":      "/api/shared/summary?token=" + token,
	})
}

// GetSharedSummary serves a summary to whoever holds a valid share token.
// Repeated bad tokens from one address are throttled.
func (handler *Handler) GetSharedSummary(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := handler.now()
	if handler.shareLimiter.tooManyRecent(limiterKey, now, shareLookupFailureLimit, shareLookupFailureWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	raw := strings.TrimSpace(c.Query("token"))
	if raw == "" {
		return apiError(c, fiber.StatusBadRequest, "token is required")
	}

	userID, err := handler.shares.ParseToken(raw)
	if err != nil {
		handler.shareLimiter.addFailure(limiterKey, now, shareLookupFailureWindow)
		log.Warn().Str("ip", limiterKey).Msg("rejected share token")
		return serviceError(c, err, "failed to read share token")
	}

	summary, err := handler.analysis.HealthcareSummary(c.UserContext(), userID, handler.today())
	if err != nil {
		return serviceError(c, err, "failed to build summary")
	}
	return c.JSON(summary)
}
