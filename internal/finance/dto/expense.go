package dto

import (
	"time"

	"github.com/Zughayyar/fin-stack-server/internal/finance/domain"
	"github.com/shopspring/decimal"
)

type CreateExpenseInput struct {
	ItemName    string          `json:"item_name"`
	Amount      decimal.Decimal `json:"amount"`
	Date        domain.Date     `json:"date"`
	Description *string         `json:"description"`
}

type UpdateExpenseInput struct {
	ItemName    *string          `json:"item_name"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *domain.Date     `json:"date"`
	Description *string          `json:"description"`
}

type ExpenseOutput struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	ItemName    string          `json:"item_name"`
	Amount      decimal.Decimal `json:"amount"`
	Date        domain.Date     `json:"date"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ExpenseToOutput(expense *domain.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:          expense.ID,
		UserID:      expense.UserID,
		ItemName:    expense.ItemName,
		Amount:      expense.Amount,
		Date:        expense.Date,
		Description: expense.Description,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
