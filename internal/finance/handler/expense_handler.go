package handler

import (
	authhandler "github.com/Zughayyar/fin-stack-server/internal/auth/handler"
	"github.com/Zughayyar/fin-stack-server/internal/finance/dto"
	"github.com/Zughayyar/fin-stack-server/internal/finance/service"
	"github.com/gofiber/fiber/v2"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateExpenseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	expense, err := h.expenseService.Create(c.UserContext(), c.Params("userID"), input)
	if err != nil {
		return authhandler.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(expense)
}

func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	expenses, err := h.expenseService.List(c.UserContext(), c.Params("userID"))
	if err != nil {
		return authhandler.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(expenses)
}

func (h *ExpenseHandler) Get(c *fiber.Ctx) error {
	expense, err := h.expenseService.Get(c.UserContext(), c.Params("userID"), c.Params("expenseID"))
	if err != nil {
		return authhandler.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(expense)
}

func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateExpenseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	expense, err := h.expenseService.Update(c.UserContext(), c.Params("userID"), c.Params("expenseID"), input)
	if err != nil {
		return authhandler.RespondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(expense)
}

func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	err := h.expenseService.Delete(c.UserContext(), c.Params("userID"), c.Params("expenseID"))
	if err != nil {
		return authhandler.RespondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
