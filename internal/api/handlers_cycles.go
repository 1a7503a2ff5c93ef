package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cycleadvisor/internal/services"
)

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	userID, ok := parseUserID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	history, err := handler.cycles.History(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, err, "failed to load cycles")
	}
	return c.JSON(history)
}

func (handler *Handler) AddCycle(c *fiber.Ctx) error {
	userID, ok := parseUserID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	input := services.CycleRecordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	record, err := input.ToRecord(handler.location)
	if err != nil {
		return serviceError(c, err, "failed to parse cycle")
	}

	created, err := handler.cycles.AddRecord(c.UserContext(), userID, record)
	if err != nil {
		return serviceError(c, err, "failed to save cycle")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
