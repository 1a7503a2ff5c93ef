package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cycleadvisor/internal/services"
)

func (handler *Handler) ListPHIScores(c *fiber.Ctx) error {
	userID, ok := parseUserID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	if _, err := handler.accounts.RequireUser(c.UserContext(), userID); err != nil {
		return serviceError(c, err, "failed to load phi scores")
	}

	scores, err := handler.phi.RecentScores(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, err, "failed to load phi scores")
	}
	return c.JSON(scores)
}

func (handler *Handler) RecordPHIScore(c *fiber.Ctx) error {
	userID, ok := parseUserID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	input := services.PHIScoreInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	score, err := input.ToScore(handler.location)
	if err != nil {
		return serviceError(c, err, "failed to parse phi score")
	}

	saved, err := handler.phi.RecordScore(c.UserContext(), userID, score)
	if err != nil {
		return serviceError(c, err, "failed to save phi score")
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}
