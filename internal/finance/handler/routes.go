package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the income and expense resources under their
// owning user. requireAuth and requireOwner come from the auth handler;
// together they guarantee the path user id matches the token subject
// before any handler here runs.
func RegisterRoutes(app *fiber.App, ih *IncomeHandler, eh *ExpenseHandler,
	requireAuth, requireOwner fiber.Handler) {
	incomes := app.Group("/api/v1/users/:userID/incomes", requireAuth, requireOwner)
	incomes.Post("", ih.Create)
	incomes.Get("", ih.List)
	incomes.Get("/:incomeID", ih.Get)
	incomes.Patch("/:incomeID", ih.Update)
	incomes.Delete("/:incomeID", ih.Delete)

	expenses := app.Group("/api/v1/users/:userID/expenses", requireAuth, requireOwner)
	expenses.Post("", eh.Create)
	expenses.Get("", eh.List)
	expenses.Get("/:expenseID", eh.Get)
	expenses.Patch("/:expenseID", eh.Update)
	expenses.Delete("/:expenseID", eh.Delete)
}
