package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Zughayyar/fin-stack-server/internal/auth/domain"
	"github.com/Zughayyar/fin-stack-server/internal/auth/dto"
	autherror "github.com/Zughayyar/fin-stack-server/internal/errors"
	"github.com/Zughayyar/fin-stack-server/internal/logging"
	"github.com/google/uuid"
)

type UserService struct {
	repo   domain.UserRepository
	tokens domain.TokenGenerator
	hasher domain.PasswordHasher
	log    logging.Logger
}

func NewUserService(repo domain.UserRepository, tokens domain.TokenGenerator,
	hasher domain.PasswordHasher, log logging.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
		log:    log,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.TokenResponse, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)

	return s.tokenResponse(user)
}

// Login authenticates the credentials and returns a fresh token. An
// unknown email and a wrong password produce the same error so callers
// cannot enumerate accounts; the log keeps the distinction.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.log.Debug(ctx, "login failed: unknown email")
		return nil, autherror.ErrInvalidCredentials
	}

	if err := s.hasher.Verify(input.Password, user.PasswordHash); err != nil {
		if errors.Is(err, autherror.ErrMalformedHash) {
			s.log.Error(ctx, "login failed: stored hash unparseable", "user_id", user.ID)
		} else {
			s.log.Debug(ctx, "login failed: password mismatch", "user_id", user.ID)
		}
		return nil, autherror.ErrInvalidCredentials
	}

	s.log.Info(ctx, "user logged in", "user_id", user.ID)

	return s.tokenResponse(user)
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrNotFound
	}

	return userOutput(user), nil
}

// UpdateProfile applies a partial update: only non-nil fields change.
// Changing the email keeps the user id stable.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input dto.UpdateUserInput) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrNotFound
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		user.Email = strings.TrimSpace(*input.Email)
	}
	if user.FirstName == "" || user.LastName == "" || !validEmail(user.Email) {
		return nil, autherror.ErrInvalidInput
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return userOutput(user), nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrNotFound
	}

	if err := s.hasher.Verify(input.CurrentPassword, user.PasswordHash); err != nil {
		if errors.Is(err, autherror.ErrMalformedHash) {
			s.log.Error(ctx, "change password: stored hash unparseable", "user_id", user.ID)
		}
		return autherror.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePasswordHash(ctx, user.ID, hash, time.Now()); err != nil {
		return err
	}

	s.log.Info(ctx, "password changed", "user_id", user.ID)

	return nil
}

// Delete removes the user and, through the ownership foreign keys, every
// income and expense the user owns.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}

	s.log.Info(ctx, "user deleted", "user_id", userID)

	return nil
}

func (s *UserService) tokenResponse(user *domain.User) (*dto.TokenResponse, error) {
	token, expiresAt, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(time.Until(expiresAt).Seconds()),
		User: dto.UserInfo{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
	}, nil
}

func validateRegisterInput(input dto.RegisterInput) error {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return fmt.Errorf("first and last name are required: %w", autherror.ErrInvalidInput)
	}
	if !validEmail(input.Email) {
		return fmt.Errorf("invalid email: %w", autherror.ErrInvalidInput)
	}
	if input.Password != input.ConfirmPassword {
		return fmt.Errorf("passwords do not match: %w", autherror.ErrInvalidInput)
	}
	return nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func userOutput(user *domain.User) *dto.UserOutput {
	return &dto.UserOutput{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
