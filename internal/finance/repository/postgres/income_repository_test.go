package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	autherror "github.com/Zughayyar/fin-stack-server/internal/errors"
	"github.com/Zughayyar/fin-stack-server/internal/finance/domain"
	repo "github.com/Zughayyar/fin-stack-server/internal/finance/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var incomeColumns = []string{"id", "user_id", "source", "amount", "date", "description", "created_at", "updated_at"}

func sampleIncome(userID string) *domain.Income {
	desc := "Monthly salary"
	return &domain.Income{
		ID:          "income-123",
		UserID:      userID,
		Source:      "Salary",
		Amount:      decimal.NewFromInt(5000),
		Date:        domain.NewDate(2024, time.March, 20),
		Description: &desc,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestIncomeCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewIncomeRepository(mock)
	ctx := context.Background()
	income := sampleIncome("user-123")

	mock.ExpectExec("INSERT INTO incomes").
		WithArgs(income.ID, income.UserID, income.Source, income.Amount, income.Date,
			income.Description, income.CreatedAt, income.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, r.Create(ctx, income))
}

func TestIncomeListByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewIncomeRepository(mock)
	ctx := context.Background()
	income := sampleIncome("user-123")

	t.Run("returns owned records", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, source").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(incomeColumns).
				AddRow(income.ID, income.UserID, income.Source, income.Amount, income.Date,
					income.Description, income.CreatedAt, income.UpdatedAt))

		incomes, err := r.ListByOwner(ctx, "user-123")
		require.NoError(t, err)
		require.Len(t, incomes, 1)
		assert.Equal(t, "Salary", incomes[0].Source)
		assert.True(t, incomes[0].Amount.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, source").
			WithArgs("user-456").
			WillReturnRows(pgxmock.NewRows(incomeColumns))

		incomes, err := r.ListByOwner(ctx, "user-456")
		require.NoError(t, err)
		assert.NotNil(t, incomes)
		assert.Empty(t, incomes)
	})

	t.Run("transient failure is retried once", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, source").
			WithArgs("user-123").
			WillReturnError(fmt.Errorf("connection reset"))
		mock.ExpectQuery("SELECT id, user_id, source").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(incomeColumns))

		incomes, err := r.ListByOwner(ctx, "user-123")
		require.NoError(t, err)
		assert.Empty(t, incomes)
	})
}

func TestIncomeGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewIncomeRepository(mock)
	ctx := context.Background()
	income := sampleIncome("user-123")

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, source").
			WithArgs(income.ID, income.UserID).
			WillReturnRows(pgxmock.NewRows(incomeColumns).
				AddRow(income.ID, income.UserID, income.Source, income.Amount, income.Date,
					income.Description, income.CreatedAt, income.UpdatedAt))

		got, err := r.GetByID(ctx, income.UserID, income.ID)
		require.NoError(t, err)
		assert.Equal(t, income.ID, got.ID)
		require.NotNil(t, got.Description)
		assert.Equal(t, "Monthly salary", *got.Description)
	})

	t.Run("foreign or absent record", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, source").
			WithArgs(income.ID, "other-user").
			WillReturnError(pgx.ErrNoRows)

		got, err := r.GetByID(ctx, "other-user", income.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestIncomeUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewIncomeRepository(mock)
	ctx := context.Background()
	income := sampleIncome("user-123")

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE incomes").
			WithArgs(income.ID, income.UserID, income.Source, income.Amount, income.Date,
				income.Description, income.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.Update(ctx, income))
	})

	t.Run("no matching owned row", func(t *testing.T) {
		mock.ExpectExec("UPDATE incomes").
			WithArgs(income.ID, income.UserID, income.Source, income.Amount, income.Date,
				income.Description, income.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, r.Update(ctx, income), autherror.ErrNotFound)
	})
}

func TestIncomeDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewIncomeRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM incomes").
			WithArgs("income-123", "user-123").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, r.Delete(ctx, "user-123", "income-123"))
	})

	t.Run("no matching owned row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM incomes").
			WithArgs("income-123", "other-user").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, r.Delete(ctx, "other-user", "income-123"), autherror.ErrNotFound)
	})
}
