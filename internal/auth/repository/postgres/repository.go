package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Zughayyar/fin-stack-server/internal/auth/domain"
	autherror "github.com/Zughayyar/fin-stack-server/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// DB is the subset of pgxpool.Pool the repository needs. pgxmock pools
// satisfy it too.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, first_name, last_name, email, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if isUniqueViolation(err) {
		return autherror.ErrEmailAlreadyInUse
	}

	return err
}

// GetByEmail returns (nil, nil) when no user has the given email.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`

	return r.queryUser(ctx, query, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`

	return r.queryUser(ctx, query, id)
}

func (r *PostgresRepository) Update(ctx context.Context, user *domain.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, updated_at = $5
		WHERE id = $1
	`, user.ID, user.FirstName, user.LastName, user.Email, user.UpdatedAt)
	if isUniqueViolation(err) {
		return autherror.ErrEmailAlreadyInUse
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, id, hash string, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, updated_at = $3
		WHERE id = $1
	`, id, hash, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrNotFound
	}

	return nil
}

// Delete hard-deletes the user. Owned incomes and expenses go with it via
// ON DELETE CASCADE on their user_id foreign keys.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrNotFound
	}

	return nil
}

// queryUser runs a single-row user lookup, retrying once on transient
// failures. Writes are never retried.
func (r *PostgresRepository) queryUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		row := r.db.QueryRow(ctx, query, arg)

		var user domain.User
		err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email,
			&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
		if err == nil {
			return &user, nil
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("failed to query user: %w", lastErr)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
