package domain

import "context"

// Both repositories scope every lookup and mutation by owner id, so a
// record can never be read or changed through another user's requests.

type IncomeRepository interface {
	Create(ctx context.Context, income *Income) error
	ListByOwner(ctx context.Context, userID string) ([]Income, error)
	GetByID(ctx context.Context, userID, id string) (*Income, error)
	Update(ctx context.Context, income *Income) error
	Delete(ctx context.Context, userID, id string) error
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error
	ListByOwner(ctx context.Context, userID string) ([]Expense, error)
	GetByID(ctx context.Context, userID, id string) (*Expense, error)
	Update(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, userID, id string) error
}
