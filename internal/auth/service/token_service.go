package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Zughayyar/fin-stack-server/internal/auth/domain"
	autherror "github.com/Zughayyar/fin-stack-server/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies HS256 bearer tokens. The secret is
// loaded once at startup and read-only afterwards, so concurrent use
// needs no locking.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

type jwtCustomClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Generate mints a token with subject userID, issued now and expiring
// after the configured lifetime. Two calls for the same user at different
// times yield different tokens; that is the only uniqueness property.
func (ts *TokenService) Generate(userID, email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.expiry)

	claims := jwtCustomClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, expiresAt, nil
}

func (ts *TokenService) Expiry() time.Duration {
	return ts.expiry
}

// Verify parses and validates tokenString and returns its claims. The
// failure classes are distinct: ErrTokenMalformed for structurally
// invalid input, ErrTokenSignatureInvalid for a bad signature or signing
// method, ErrTokenExpired for a token past its expiry.
func (ts *TokenService) Verify(tokenString string) (*domain.Claims, error) {
	claims := &jwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %v", autherror.ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, fmt.Errorf("%w: %v", autherror.ErrTokenSignatureInvalid, err)
		default:
			return nil, fmt.Errorf("%w: %v", autherror.ErrTokenMalformed, err)
		}
	}

	if !token.Valid || claims.Subject == "" {
		return nil, autherror.ErrTokenMalformed
	}

	out := &domain.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
