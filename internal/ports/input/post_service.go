package input

import (
	"context"

	"mindspace-api/internal/domain"

	"github.com/google/uuid"
)

// PostService interface - Input port (use case)
// Defines what the application can do with blog posts
type PostService interface {
	PublishPost(ctx context.Context, userID uuid.UUID, request domain.PostRequest) (*domain.PostResponse, error)
	GetAllPosts(ctx context.Context) ([]domain.PostResponse, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*domain.PostResponse, error)
	UpdatePost(ctx context.Context, userID, postID uuid.UUID, request domain.PostRequest) (*domain.PostResponse, error)
	DeletePost(ctx context.Context, userID, postID uuid.UUID) error
}
