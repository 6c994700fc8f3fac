package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a single income record. UserID is the non-null owner; a
// record is only ever visible through requests authenticated as that
// owner.
type Income struct {
	ID          string
	UserID      string
	Source      string
	Amount      decimal.Decimal
	Date        Date
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
