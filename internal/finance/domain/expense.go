package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense mirrors Income with an item name instead of a source.
type Expense struct {
	ID          string
	UserID      string
	ItemName    string
	Amount      decimal.Decimal
	Date        Date
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
