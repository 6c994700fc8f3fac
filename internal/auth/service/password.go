package service

import (
	"errors"
	"fmt"
	"strings"

	autherror "github.com/Zughayyar/fin-stack-server/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the longest accepted plaintext, in bytes. bcrypt
// silently ignores input past 72 bytes, so anything longer would make
// distinct passwords verify against the same hash.
const MaxPasswordLength = 72

// BcryptHasher hashes passwords with bcrypt at a fixed cost. The cost is
// the tunable work factor; the salt is generated per hash and embedded in
// the output along with the algorithm id and cost.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("empty password: %w", autherror.ErrInvalidInput)
	}
	if len(plaintext) > MaxPasswordLength {
		return "", fmt.Errorf("password longer than %d bytes: %w", MaxPasswordLength, autherror.ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify recomputes the digest using the cost and salt embedded in hash
// and compares in constant time. A stored value that does not parse as a
// bcrypt hash is reported as malformed, not as a mismatch.
func (h *BcryptHasher) Verify(plaintext, hash string) error {
	if !strings.HasPrefix(hash, "$2") {
		return autherror.ErrMalformedHash
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return fmt.Errorf("%w: %v", autherror.ErrMalformedHash, err)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return autherror.ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %v", autherror.ErrMalformedHash, err)
	}

	return nil
}
