package application

import (
	"context"
	"errors"
	"fmt"

	"mindspace-api/internal/domain"
	"mindspace-api/internal/ports/input"
	"mindspace-api/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure AuthService implements AuthService interface
var _ input.AuthService = (*AuthService)(nil)

// Bulk mail content sent by SendMailToAll
const (
	bulkMailSubject = "Test Email"
	bulkMailBody    = "If you're reading this, the email functionality is working!"
)

// AuthService struct - Application service implementing account use cases
type AuthService struct {
	users  output.UserRepository
	hasher output.PasswordHasher
	tokens output.TokenManager
	mailer output.Mailer
}

// NewAuthService func - Creates new auth service
func NewAuthService(users output.UserRepository, hasher output.PasswordHasher, tokens output.TokenManager, mailer output.Mailer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		mailer: mailer,
	}
}

// Signup func - Use case: register an account and open a session
func (s *AuthService) Signup(ctx context.Context, request domain.SignupRequest) (string, error) {
	existing, err := s.users.FindUserByUsername(ctx, request.Username)
	if err == nil && existing != nil {
		return "", domain.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logrus.Errorln(err)
		return "", err
	}

	hashed, err := s.hasher.Hash(request.Password)
	if err != nil {
		logrus.Errorln(err)
		return "", err
	}

	user := &domain.User{
		Username: request.Username,
		Email:    request.Email,
		Password: hashed,
		Name:     request.Name,
		Img:      domain.DefaultAvatarURL,
		Role:     domain.RoleUser,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return "", err
	}

	logrus.WithField("userId", user.ID).Info("User signed up")
	return s.tokens.Issue(user.ID)
}

// Signin func - Use case: verify credentials and open a session
func (s *AuthService) Signin(ctx context.Context, request domain.SigninRequest) (string, error) {
	user, err := s.users.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		logrus.Errorln(err)
		return "", err
	}

	if err := s.hasher.Compare(user.Password, request.Password); err != nil {
		return "", err
	}

	return s.tokens.Issue(user.ID)
}

// Authenticate func - Use case: resolve a session token to a user id
func (s *AuthService) Authenticate(token string) (uuid.UUID, error) {
	return s.tokens.Verify(token)
}

// RequireAdmin func
func (s *AuthService) RequireAdmin(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.FindUserByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrForbidden
	}
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// UpdateUser func - Use case: edit the caller's profile
func (s *AuthService) UpdateUser(ctx context.Context, userID uuid.UUID, request domain.UpdateUserRequest) (*domain.UserResponse, error) {
	user, err := s.users.UpdateUser(ctx, userID, request)
	if err != nil {
		return nil, err
	}
	resp := domain.NewUserResponse(user, false)
	return &resp, nil
}

// GetUserInfo func
func (s *AuthService) GetUserInfo(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := domain.NewUserResponse(user, true)
	return &resp, nil
}

// ListUsers func - Use case: admin listing of every account
func (s *AuthService) ListUsers(ctx context.Context, requesterID uuid.UUID) ([]domain.UserResponse, error) {
	if err := s.RequireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, domain.NewUserResponse(&users[i], false))
	}
	return result, nil
}

// SendMailToAll func - Use case: one BCC message to every registered address
func (s *AuthService) SendMailToAll(ctx context.Context) (int, error) {
	emails, err := s.users.ListEmails(ctx)
	if err != nil {
		return 0, err
	}

	if err := s.mailer.SendBulk(ctx, emails, bulkMailSubject, bulkMailBody); err != nil {
		return 0, fmt.Errorf("send bulk mail: %w", err)
	}
	return len(emails), nil
}
