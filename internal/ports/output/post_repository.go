package output

import (
	"context"

	"mindspace-api/internal/domain"

	"github.com/google/uuid"
)

// PostRepository interface - Output port
// Returned posts have their author preloaded.
type PostRepository interface {
	CreatePost(ctx context.Context, post *domain.Post) error
	FindPostByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	// ListPosts returns every post ordered by publish date, oldest first.
	ListPosts(ctx context.Context) ([]domain.Post, error)
	UpdatePost(ctx context.Context, post *domain.Post) (*domain.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}
