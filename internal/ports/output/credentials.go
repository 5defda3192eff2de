package output

import "github.com/google/uuid"

// PasswordHasher interface - Output port for one-way password hashing
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenManager interface - Output port for signed session tokens
type TokenManager interface {
	Issue(userID uuid.UUID) (string, error)
	// Verify returns domain.ErrMissingToken for an empty token and
	// domain.ErrInvalidToken for a bad signature, expiry or payload.
	Verify(token string) (uuid.UUID, error)
}
