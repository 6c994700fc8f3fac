package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	autherror "github.com/Zughayyar/fin-stack-server/internal/errors"
	"github.com/Zughayyar/fin-stack-server/internal/finance/domain"
	"github.com/Zughayyar/fin-stack-server/internal/finance/dto"
	"github.com/Zughayyar/fin-stack-server/internal/logging"
	"github.com/google/uuid"
)

type ExpenseService struct {
	repo domain.ExpenseRepository
	log  logging.Logger
}

func NewExpenseService(repo domain.ExpenseRepository, log logging.Logger) *ExpenseService {
	return &ExpenseService{repo: repo, log: log}
}

func (s *ExpenseService) Create(ctx context.Context, userID string, input dto.CreateExpenseInput) (*dto.ExpenseOutput, error) {
	if strings.TrimSpace(input.ItemName) == "" {
		return nil, fmt.Errorf("item name is required: %w", autherror.ErrInvalidInput)
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", autherror.ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("date is required: %w", autherror.ErrInvalidInput)
	}

	now := time.Now()
	expense := &domain.Expense{
		ID:          uuid.New().String(),
		UserID:      userID,
		ItemName:    input.ItemName,
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "expense created", "expense_id", expense.ID, "user_id", userID)

	return dto.ExpenseToOutput(expense), nil
}

func (s *ExpenseService) List(ctx context.Context, userID string) ([]dto.ExpenseOutput, error) {
	expenses, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ExpenseOutput, 0, len(expenses))
	for i := range expenses {
		out = append(out, *dto.ExpenseToOutput(&expenses[i]))
	}

	return out, nil
}

func (s *ExpenseService) Get(ctx context.Context, userID, expenseID string) (*dto.ExpenseOutput, error) {
	if _, err := uuid.Parse(expenseID); err != nil {
		return nil, fmt.Errorf("invalid expense id: %w", autherror.ErrInvalidInput)
	}

	expense, err := s.repo.GetByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, autherror.ErrNotFound
	}

	return dto.ExpenseToOutput(expense), nil
}

func (s *ExpenseService) Update(ctx context.Context, userID, expenseID string, input dto.UpdateExpenseInput) (*dto.ExpenseOutput, error) {
	if _, err := uuid.Parse(expenseID); err != nil {
		return nil, fmt.Errorf("invalid expense id: %w", autherror.ErrInvalidInput)
	}

	expense, err := s.repo.GetByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, autherror.ErrNotFound
	}

	if input.ItemName != nil {
		expense.ItemName = *input.ItemName
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Description != nil {
		expense.Description = input.Description
	}

	if strings.TrimSpace(expense.ItemName) == "" || !expense.Amount.IsPositive() || expense.Date.IsZero() {
		return nil, autherror.ErrInvalidInput
	}
	expense.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, err
	}

	return dto.ExpenseToOutput(expense), nil
}

func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID string) error {
	if _, err := uuid.Parse(expenseID); err != nil {
		return fmt.Errorf("invalid expense id: %w", autherror.ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, userID, expenseID); err != nil {
		return err
	}

	s.log.Info(ctx, "expense deleted", "expense_id", expenseID, "user_id", userID)

	return nil
}
