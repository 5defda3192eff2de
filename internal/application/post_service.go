package application

import (
	"context"

	"mindspace-api/internal/domain"
	"mindspace-api/internal/ports/input"
	"mindspace-api/internal/ports/output"
	"mindspace-api/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure PostService implements PostService interface
var _ input.PostService = (*PostService)(nil)

// DefaultFallbackImageURL is used when the GIF lookup fails
const DefaultFallbackImageURL = "https://picsum.photos/300/300?random"

// PostService struct - Application service implementing blog post use cases
type PostService struct {
	posts       output.PostRepository
	users       output.UserRepository
	gifs        output.GifClient
	fallbackURL string
}

// NewPostService func - Creates new post service
func NewPostService(posts output.PostRepository, users output.UserRepository, gifs output.GifClient, fallbackURL string) *PostService {
	if fallbackURL == "" {
		fallbackURL = DefaultFallbackImageURL
	}
	return &PostService{
		posts:       posts,
		users:       users,
		gifs:        gifs,
		fallbackURL: fallbackURL,
	}
}

// imageURL never fails: any lookup error yields the fallback image
func (s *PostService) imageURL(ctx context.Context) string {
	url, err := s.gifs.RandomGifURL(ctx)
	if err != nil || url == "" {
		logrus.Warnf("GIF lookup failed, using fallback image: %v", err)
		metrics.GifFallbacks.Inc()
		return s.fallbackURL
	}
	return url
}

// PublishPost func - Use case: create a post with a random header image
func (s *PostService) PublishPost(ctx context.Context, userID uuid.UUID, request domain.PostRequest) (*domain.PostResponse, error) {
	post := &domain.Post{
		UserID:  userID,
		Title:   request.Title,
		Content: request.Content,
		ImgURL:  s.imageURL(ctx),
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	resp := domain.NewPostResponse(post)
	return &resp, nil
}

// GetAllPosts func
func (s *PostService) GetAllPosts(ctx context.Context) ([]domain.PostResponse, error) {
	posts, err := s.posts.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.PostResponse, 0, len(posts))
	for i := range posts {
		result = append(result, domain.NewPostResponse(&posts[i]))
	}
	return result, nil
}

// GetPost func
func (s *PostService) GetPost(ctx context.Context, postID uuid.UUID) (*domain.PostResponse, error) {
	post, err := s.posts.FindPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	resp := domain.NewPostResponse(post)
	return &resp, nil
}

// UpdatePost func - Use case: the author edits a post, which also refreshes its image
func (s *PostService) UpdatePost(ctx context.Context, userID, postID uuid.UUID, request domain.PostRequest) (*domain.PostResponse, error) {
	post, err := s.posts.FindPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.CanEdit(userID) {
		return nil, domain.ErrForbidden
	}

	post.Title = request.Title
	post.Content = request.Content
	post.ImgURL = s.imageURL(ctx)

	updated, err := s.posts.UpdatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	resp := domain.NewPostResponse(updated)
	return &resp, nil
}

// DeletePost func - Use case: the author or an admin removes a post
func (s *PostService) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	post, err := s.posts.FindPostByID(ctx, postID)
	if err != nil {
		return err
	}

	requester, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !post.CanDelete(requester) {
		return domain.ErrForbidden
	}

	return s.posts.DeletePost(ctx, postID)
}
