package postgres

import (
	"context"

	"mindspace-api/internal/domain"
	"mindspace-api/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure UserRepository implements UserRepository interface
var _ output.UserRepository = (*UserRepository)(nil)

// UserRepository struct - Secondary/Driven adapter for PostgreSQL
type UserRepository struct {
	dbGorm *gorm.DB
}

// NewUserRepository func - Creates new PostgreSQL repository
func NewUserRepository(dbGorm *gorm.DB) *UserRepository {
	return &UserRepository{
		dbGorm: dbGorm,
	}
}

// CreateUser func - Inserts a new user
func (p *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if err := p.dbGorm.WithContext(ctx).Create(user).Error; err != nil {
		logrus.Errorln(err)
		return translateError(err, domain.ErrUserNotFound)
	}
	return nil
}

// FindUserByID func
func (p *UserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := p.dbGorm.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateError(err, domain.ErrUserNotFound)
	}
	return &user, nil
}

// FindUserByUsername func
func (p *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := p.dbGorm.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateError(err, domain.ErrUserNotFound)
	}
	return &user, nil
}

// UpdateUser func - Applies the non-nil fields of request and returns the stored row
func (p *UserRepository) UpdateUser(ctx context.Context, id uuid.UUID, request domain.UpdateUserRequest) (*domain.User, error) {
	var user domain.User

	columns := p.updateColumns(request)
	if len(columns) == 0 {
		return p.FindUserByID(ctx, id)
	}

	tx := p.dbGorm.WithContext(ctx).Begin()
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return nil, tx.Error
	}
	defer func() {
		tx.Rollback()
	}()

	result := tx.Model(&domain.User{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		logrus.Errorln(result.Error)
		return nil, translateError(result.Error, domain.ErrUserNotFound)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
		logrus.Errorln(err)
		return nil, translateError(err, domain.ErrUserNotFound)
	}
	if err := tx.Commit().Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &user, nil
}

func (p *UserRepository) updateColumns(request domain.UpdateUserRequest) map[string]interface{} {
	expression := make(map[string]interface{})
	if request.Name != nil {
		expression["name"] = *request.Name
	}
	if request.Username != nil {
		expression["username"] = *request.Username
	}
	if request.Img != nil {
		expression["img"] = *request.Img
	}
	return expression
}

// ListUsers func - Returns every user ordered by sign-up time
func (p *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := p.dbGorm.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return users, nil
}

// ListEmails func
func (p *UserRepository) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := p.dbGorm.WithContext(ctx).Model(&domain.User{}).Pluck("email", &emails).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return emails, nil
}
