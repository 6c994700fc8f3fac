package dto

import (
	"time"

	"github.com/Zughayyar/fin-stack-server/internal/finance/domain"
	"github.com/shopspring/decimal"
)

type CreateIncomeInput struct {
	Source      string          `json:"source"`
	Amount      decimal.Decimal `json:"amount"`
	Date        domain.Date     `json:"date"`
	Description *string         `json:"description"`
}

type UpdateIncomeInput struct {
	Source      *string          `json:"source"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *domain.Date     `json:"date"`
	Description *string          `json:"description"`
}

type IncomeOutput struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Source      string          `json:"source"`
	Amount      decimal.Decimal `json:"amount"`
	Date        domain.Date     `json:"date"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func IncomeToOutput(income *domain.Income) *IncomeOutput {
	return &IncomeOutput{
		ID:          income.ID,
		UserID:      income.UserID,
		Source:      income.Source,
		Amount:      income.Amount,
		Date:        income.Date,
		Description: income.Description,
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
}
