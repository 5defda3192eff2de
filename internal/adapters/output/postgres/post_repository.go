package postgres

import (
	"context"

	"mindspace-api/internal/domain"
	"mindspace-api/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure PostRepository implements PostRepository interface
var _ output.PostRepository = (*PostRepository)(nil)

// PostRepository struct - Secondary/Driven adapter for PostgreSQL
type PostRepository struct {
	dbGorm *gorm.DB
}

// NewPostRepository func
func NewPostRepository(dbGorm *gorm.DB) *PostRepository {
	return &PostRepository{
		dbGorm: dbGorm,
	}
}

// preloadAuthor loads only the public author columns
func preloadAuthor(db *gorm.DB) *gorm.DB {
	return db.Preload("User", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "name", "username", "img", "role")
	})
}

// CreatePost func
func (p *PostRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	if err := p.dbGorm.WithContext(ctx).Create(post).Error; err != nil {
		logrus.Errorln(err)
		return translateError(err, domain.ErrPostNotFound)
	}
	return nil
}

// FindPostByID func
func (p *PostRepository) FindPostByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	if err := preloadAuthor(p.dbGorm.WithContext(ctx)).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, translateError(err, domain.ErrPostNotFound)
	}
	return &post, nil
}

// ListPosts func
func (p *PostRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := preloadAuthor(p.dbGorm.WithContext(ctx)).Order("published_date ASC").Find(&posts).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return posts, nil
}

// UpdatePost func - Persists title, content and image and returns the post with its author
func (p *PostRepository) UpdatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	result := p.dbGorm.WithContext(ctx).Model(&domain.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"title":   post.Title,
		"content": post.Content,
		"img_url": post.ImgURL,
	})
	if result.Error != nil {
		logrus.Errorln(result.Error)
		return nil, translateError(result.Error, domain.ErrPostNotFound)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrPostNotFound
	}
	return p.FindPostByID(ctx, post.ID)
}

// DeletePost func
func (p *PostRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	result := p.dbGorm.WithContext(ctx).Where("id = ?", id).Delete(&domain.Post{})
	if result.Error != nil {
		logrus.Errorln(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
