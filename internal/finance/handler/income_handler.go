package handler

import (
	authhandler "github.com/Zughayyar/fin-stack-server/internal/auth/handler"
	"github.com/Zughayyar/fin-stack-server/internal/finance/dto"
	"github.com/Zughayyar/fin-stack-server/internal/finance/service"
	"github.com/gofiber/fiber/v2"
)

type IncomeHandler struct {
	incomeService *service.IncomeService
}

func NewIncomeHandler(incomeService *service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

func (h *IncomeHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateIncomeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	income, err := h.incomeService.Create(c.UserContext(), c.Params("userID"), input)
	if err != nil {
		return authhandler.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(income)
}

func (h *IncomeHandler) List(c *fiber.Ctx) error {
	incomes, err := h.incomeService.List(c.UserContext(), c.Params("userID"))
	if err != nil {
		return authhandler.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(incomes)
}

func (h *IncomeHandler) Get(c *fiber.Ctx) error {
	income, err := h.incomeService.Get(c.UserContext(), c.Params("userID"), c.Params("incomeID"))
	if err != nil {
		return authhandler.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(income)
}

func (h *IncomeHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateIncomeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	income, err := h.incomeService.Update(c.UserContext(), c.Params("userID"), c.Params("incomeID"), input)
	if err != nil {
		return authhandler.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(income)
}

func (h *IncomeHandler) Delete(c *fiber.Ctx) error {
	err := h.incomeService.Delete(c.UserContext(), c.Params("userID"), c.Params("incomeID"))
	if err != nil {
		return authhandler.RespondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
