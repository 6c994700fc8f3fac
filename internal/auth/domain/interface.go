package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePasswordHash(ctx context.Context, id, hash string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type TokenGenerator interface {
	Generate(userID, email string) (string, time.Time, error)
	Verify(token string) (*Claims, error)
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) error
}
