package handler

import (
	"github.com/Zughayyar/fin-stack-server/internal/auth/domain"
	"github.com/Zughayyar/fin-stack-server/internal/auth/dto"
	"github.com/Zughayyar/fin-stack-server/internal/auth/service"
	"github.com/Zughayyar/fin-stack-server/internal/logging"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
	tokens      domain.TokenGenerator
	log         logging.Logger
}

func NewAuthHandler(userService *service.UserService, tokens domain.TokenGenerator, log logging.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	resp, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	resp, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
