package api

import (
	"github.com/gofiber/fiber/v2"
)

type createUserInput struct {
	DisplayName string `json:"displayName"`
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	input := createUserInput{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
	}

	user, err := handler.accounts.CreateUser(c.UserContext(), input.DisplayName)
	if err != nil {
		return serviceError(c, err, "failed to create user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}
