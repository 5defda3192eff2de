package security

import (
	"errors"
	"fmt"

	"mindspace-api/internal/domain"
	"mindspace-api/internal/ports/output"

	"golang.org/x/crypto/bcrypt"
)

// Compile-time check to ensure BcryptHasher implements PasswordHasher interface
var _ output.PasswordHasher = (*BcryptHasher)(nil)

// DefaultCost matches the work factor existing password hashes were created with
const DefaultCost = 10

// BcryptHasher struct - Output adapter for bcrypt password hashing
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher func - cost below bcrypt.MinCost uses DefaultCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare checks password against hash
func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}
