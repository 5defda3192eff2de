package input

import (
	"context"

	"mindspace-api/internal/domain"

	"github.com/google/uuid"
)

// AuthService interface - Input port (use case)
// Defines account and session operations
type AuthService interface {
	// Signup creates an account and returns a session token for it.
	Signup(ctx context.Context, request domain.SignupRequest) (string, error)
	// Signin verifies credentials and returns a session token.
	Signin(ctx context.Context, request domain.SigninRequest) (string, error)
	// Authenticate validates a session token and returns the user id it carries.
	Authenticate(token string) (uuid.UUID, error)
	// RequireAdmin fails with domain.ErrForbidden unless the user is an admin.
	RequireAdmin(ctx context.Context, userID uuid.UUID) error
	UpdateUser(ctx context.Context, userID uuid.UUID, request domain.UpdateUserRequest) (*domain.UserResponse, error)
	GetUserInfo(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error)
	ListUsers(ctx context.Context, requesterID uuid.UUID) ([]domain.UserResponse, error)
	// SendMailToAll mails every registered user and returns how many were addressed.
	SendMailToAll(ctx context.Context) (int, error)
}
