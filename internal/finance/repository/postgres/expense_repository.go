package postgres

import (
	"context"
	"errors"
	"fmt"

	autherror "github.com/Zughayyar/fin-stack-server/internal/errors"
	"github.com/Zughayyar/fin-stack-server/internal/finance/domain"
	"github.com/jackc/pgx/v5"
)

type ExpenseRepository struct {
	db DB
}

func NewExpenseRepository(db DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO expenses (id, user_id, item_name, amount, date, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, expense.ID, expense.UserID, expense.ItemName, expense.Amount, expense.Date,
		expense.Description, expense.CreatedAt, expense.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

func (r *ExpenseRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Expense, error) {
	query := `
		SELECT id, user_id, item_name, amount, date, description, created_at, updated_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC;
	`

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		rows, err := r.db.Query(ctx, query, userID)
		if err != nil {
			lastErr = err
			continue
		}

		expenses, err := scanExpenses(rows)
		if err != nil {
			lastErr = err
			continue
		}

		return expenses, nil
	}

	return nil, fmt.Errorf("failed to list expenses: %w", lastErr)
}

func (r *ExpenseRepository) GetByID(ctx context.Context, userID, id string) (*domain.Expense, error) {
	query := `
		SELECT id, user_id, item_name, amount, date, description, created_at, updated_at
		FROM expenses
		WHERE id = $1 AND user_id = $2
		LIMIT 1;
	`

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		row := r.db.QueryRow(ctx, query, id, userID)

		var expense domain.Expense
		err := row.Scan(&expense.ID, &expense.UserID, &expense.ItemName, &expense.Amount,
			&expense.Date, &expense.Description, &expense.CreatedAt, &expense.UpdatedAt)
		if err == nil {
			return &expense, nil
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("failed to get expense: %w", lastErr)
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE expenses
		SET item_name = $3, amount = $4, date = $5, description = $6, updated_at = $7
		WHERE id = $1 AND user_id = $2
	`, expense.ID, expense.UserID, expense.ItemName, expense.Amount, expense.Date,
		expense.Description, expense.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrNotFound
	}

	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrNotFound
	}

	return nil
}

func scanExpenses(rows pgx.Rows) ([]domain.Expense, error) {
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var expense domain.Expense
		err := rows.Scan(&expense.ID, &expense.UserID, &expense.ItemName, &expense.Amount,
			&expense.Date, &expense.Description, &expense.CreatedAt, &expense.UpdatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}
