package handler

import (
	"github.com/Zughayyar/fin-stack-server/internal/auth/dto"
	"github.com/gofiber/fiber/v2"
)

func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetProfile(c.UserContext(), c.Params("userID"))
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	var input dto.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user, err := h.userService.UpdateProfile(c.UserContext(), c.Params("userID"), input)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.userService.ChangePassword(c.UserContext(), c.Params("userID"), input); err != nil {
		return RespondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.UserContext(), c.Params("userID")); err != nil {
		return RespondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
