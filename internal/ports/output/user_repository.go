package output

import (
	"context"

	"mindspace-api/internal/domain"

	"github.com/google/uuid"
)

// UserRepository interface - Output port
// Defines what the application needs from user persistence.
// Lookups return domain.ErrNotFound when no row matches; uniqueness
// violations surface as domain.ErrUsernameTaken or domain.ErrEmailTaken.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	FindUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, request domain.UpdateUserRequest) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListEmails(ctx context.Context) ([]string, error)
}
