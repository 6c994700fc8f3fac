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

type IncomeService struct {
	repo domain.IncomeRepository
	log  logging.Logger
}

func NewIncomeService(repo domain.IncomeRepository, log logging.Logger) *IncomeService {
	return &IncomeService{repo: repo, log: log}
}

func (s *IncomeService) Create(ctx context.Context, userID string, input dto.CreateIncomeInput) (*dto.IncomeOutput, error) {
	if strings.TrimSpace(input.Source) == "" {
		return nil, fmt.Errorf("source is required: %w", autherror.ErrInvalidInput)
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", autherror.ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("date is required: %w", autherror.ErrInvalidInput)
	}

	now := time.Now()
	income := &domain.Income{
		ID:          uuid.New().String(),
		UserID:      userID,
		Source:      input.Source,
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, income); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "income created", "income_id", income.ID, "user_id", userID)

	return dto.IncomeToOutput(income), nil
}

func (s *IncomeService) List(ctx context.Context, userID string) ([]dto.IncomeOutput, error) {
	incomes, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.IncomeOutput, 0, len(incomes))
	for i := range incomes {
		out = append(out, *dto.IncomeToOutput(&incomes[i]))
	}

	return out, nil
}

func (s *IncomeService) Get(ctx context.Context, userID, incomeID string) (*dto.IncomeOutput, error) {
	if _, err := uuid.Parse(incomeID); err != nil {
		return nil, fmt.Errorf("invalid income id: %w", autherror.ErrInvalidInput)
	}

	income, err := s.repo.GetByID(ctx, userID, incomeID)
	if err != nil {
		return nil, err
	}
	if income == nil {
		return nil, autherror.ErrNotFound
	}

	return dto.IncomeToOutput(income), nil
}

// Update changes only the supplied fields and bumps the modification
// timestamp.
func (s *IncomeService) Update(ctx context.Context, userID, incomeID string, input dto.UpdateIncomeInput) (*dto.IncomeOutput, error) {
	if _, err := uuid.Parse(incomeID); err != nil {
		return nil, fmt.Errorf("invalid income id: %w", autherror.ErrInvalidInput)
	}

	income, err := s.repo.GetByID(ctx, userID, incomeID)
	if err != nil {
		return nil, err
	}
	if income == nil {
		return nil, autherror.ErrNotFound
	}

	if input.Source != nil {
		income.Source = *input.Source
	}
	if input.Amount != nil {
		income.Amount = *input.Amount
	}
	if input.Date != nil {
		income.Date = *input.Date
	}
	if input.Description != nil {
		income.Description = input.Description
	}

	if strings.TrimSpace(income.Source) == "" || !income.Amount.IsPositive() || income.Date.IsZero() {
		return nil, autherror.ErrInvalidInput
	}
	income.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, income); err != nil {
		return nil, err
	}

	return dto.IncomeToOutput(income), nil
}

func (s *IncomeService) Delete(ctx context.Context, userID, incomeID string) error {
	if _, err := uuid.Parse(incomeID); err != nil {
		return fmt.Errorf("invalid income id: %w", autherror.ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, userID, incomeID); err != nil {
		return err
	}

	s.log.Info(ctx, "income deleted", "income_id", incomeID, "user_id", userID)

	return nil
}
