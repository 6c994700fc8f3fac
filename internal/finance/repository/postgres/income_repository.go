package postgres

import (
	"context"
	"errors"
	"fmt"

	autherror "github.com/Zughayyar/fin-stack-server/internal/errors"
	"github.com/Zughayyar/fin-stack-server/internal/finance/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories need. pgxmock pools
// satisfy it too.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type IncomeRepository struct {
	db DB
}

func NewIncomeRepository(db DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

func (r *IncomeRepository) Create(ctx context.Context, income *domain.Income) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO incomes (id, user_id, source, amount, date, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, income.ID, income.UserID, income.Source, income.Amount, income.Date,
		income.Description, income.CreatedAt, income.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}

	return nil
}

func (r *IncomeRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Income, error) {
	query := `
		SELECT id, user_id, source, amount, date, description, created_at, updated_at
		FROM incomes
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

		incomes, err := scanIncomes(rows)
		if err != nil {
			lastErr = err
			continue
		}

		return incomes, nil
	}

	return nil, fmt.Errorf("failed to list incomes: %w", lastErr)
}

// GetByID returns (nil, nil) when no income with the id is owned by
// userID. A record owned by someone else is indistinguishable from an
// absent one.
func (r *IncomeRepository) GetByID(ctx context.Context, userID, id string) (*domain.Income, error) {
	query := `
		SELECT id, user_id, source, amount, date, description, created_at, updated_at
		FROM incomes
		WHERE id = $1 AND user_id = $2
		LIMIT 1;
	`

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		row := r.db.QueryRow(ctx, query, id, userID)

		var income domain.Income
		err := row.Scan(&income.ID, &income.UserID, &income.Source, &income.Amount,
			&income.Date, &income.Description, &income.CreatedAt, &income.UpdatedAt)
		if err == nil {
			return &income, nil
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("failed to get income: %w", lastErr)
}

func (r *IncomeRepository) Update(ctx context.Context, income *domain.Income) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE incomes
		SET source = $3, amount = $4, date = $5, description = $6, updated_at = $7
		WHERE id = $1 AND user_id = $2
	`, income.ID, income.UserID, income.Source, income.Amount, income.Date,
		income.Description, income.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrNotFound
	}

	return nil
}

func (r *IncomeRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM incomes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrNotFound
	}

	return nil
}

func scanIncomes(rows pgx.Rows) ([]domain.Income, error) {
	defer rows.Close()

	incomes := []domain.Income{}
	for rows.Next() {
		var income domain.Income
		err := rows.Scan(&income.ID, &income.UserID, &income.Source, &income.Amount,
			&income.Date, &income.Description, &income.CreatedAt, &income.UpdatedAt)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}

	return incomes, rows.Err()
}
