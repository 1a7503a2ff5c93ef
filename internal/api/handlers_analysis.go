package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cycleadvisor/internal/services"
)

func (handler *Handler) GetAnalysis(c *fiber.Ctx) error {
	userID, referenceDate, status, message := handler.userAndReferenceDate(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	analysis, _, err := handler.analysis.Analyze(c.UserContext(), userID, referenceDate)
	if err != nil {
		return serviceError(c, err, "failed to analyze cycles")
	}
	return c.JSON(analysis)
}

func (handler *Handler) GetPrediction(c *fiber.Ctx) error {
	userID, referenceDate, status, message := handler.userAndReferenceDate(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	prediction, err := handler.analysis.Predict(c.UserContext(), userID, referenceDate)
	if err != nil {
		return serviceError(c, err, "failed to predict next cycle")
	}
	return c.JSON(prediction)
}

// userAndReferenceDate returns a non-zero status when the request is invalid.
func (handler *Handler) userAndReferenceDate(c *fiber.Ctx) (uint, time.Time, int, string) {
	userID, ok := parseUserID(c)
	if !ok {
		return 0, time.Time{}, fiber.StatusBadRequest, "invalid user id"
	}
	referenceDate, err := services.ParseReferenceDate(c.Query("date"), handler.today(), handler.location)
	if err != nil {
		return 0, time.Time{}, fiber.StatusBadRequest, "invalid date"
	}
	return userID, referenceDate, 0, ""
}
