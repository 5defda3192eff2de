package application

import (
	"context"
	"errors"
	"testing"

	"mindspace-api/internal/domain"

	"github.com/google/uuid"
)

func newTestAuthService() (*AuthService, *MockUserRepository, *MockTokenManager, *MockMailer) {
	users := &MockUserRepository{}
	tokens := &MockTokenManager{}
	mailer := &MockMailer{}
	return NewAuthService(users, &MockPasswordHasher{}, tokens, mailer), users, tokens, mailer
}

func TestSignupCreatesUserWithDefaults(t *testing.T) {
	service, users, tokens, _ := newTestAuthService()

	token, err := service.Signup(context.Background(), domain.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	created := users.CreatedUser
	if created == nil {
		t.Fatal("expected user to be created")
	}
	if created.Password != "hashed:password1" {
		t.Errorf("expected hashed password, got %q", created.Password)
	}
	if created.Img != domain.DefaultAvatarURL {
		t.Errorf("expected default avatar, got %q", created.Img)
	}
	if created.Role != domain.RoleUser {
		t.Errorf("expected role user, got %q", created.Role)
	}
	if tokens.IssuedFor != created.ID || token == "" {
		t.Errorf("expected token issued for %s, got %s", created.ID, tokens.IssuedFor)
	}
}

func TestSignupUsernameTaken(t *testing.T) {
	service, users, _, _ := newTestAuthService()
	users.FindUserByUsernameFunc = func(ctx context.Context, username string) (*domain.User, error) {
		return &domain.User{Username: username}, nil
	}

	_, err := service.Signup(context.Background(), domain.SignupRequest{Username: "alice"})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if users.CreatedUser != nil {
		t.Error("expected no user to be created")
	}
}

func TestSignupEmailTaken(t *testing.T) {
	service, users, _, _ := newTestAuthService()
	users.CreateUserFunc = func(ctx context.Context, user *domain.User) error {
		return domain.ErrEmailTaken
	}

	_, err := service.Signup(context.Background(), domain.SignupRequest{Username: "alice", Email: "dup@example.com"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestSignin(t *testing.T) {
	service, users, tokens, _ := newTestAuthService()
	id := uuid.New()
	users.FindUserByUsernameFunc = func(ctx context.Context, username string) (*domain.User, error) {
		if username != "alice" {
			return nil, domain.ErrUserNotFound
		}
		return &domain.User{ID: id, Username: username, Password: "hashed:password1"}, nil
	}

	if _, err := service.Signin(context.Background(), domain.SigninRequest{Username: "alice", Password: "password1"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tokens.IssuedFor != id {
		t.Errorf("expected token for %s, got %s", id, tokens.IssuedFor)
	}

	_, err := service.Signin(context.Background(), domain.SigninRequest{Username: "alice", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	_, err = service.Signin(context.Background(), domain.SigninRequest{Username: "bob", Password: "password1"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRequireAdmin(t *testing.T) {
	service, users, _, _ := newTestAuthService()
	adminID, userID := uuid.New(), uuid.New()
	users.FindUserByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
		switch id {
		case adminID:
			return &domain.User{ID: id, Role: domain.RoleAdmin}, nil
		case userID:
			return &domain.User{ID: id, Role: domain.RoleUser}, nil
		}
		return nil, domain.ErrUserNotFound
	}

	if err := service.RequireAdmin(context.Background(), adminID); err != nil {
		t.Errorf("admin: expected no error, got %v", err)
	}
	if err := service.RequireAdmin(context.Background(), userID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("user: expected ErrForbidden, got %v", err)
	}
	if err := service.RequireAdmin(context.Background(), uuid.New()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("unknown: expected ErrForbidden, got %v", err)
	}
}

func TestListUsersRequiresAdmin(t *testing.T) {
	service, users, _, _ := newTestAuthService()
	adminID := uuid.New()
	users.FindUserByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
		return &domain.User{ID: id, Role: domain.RoleAdmin}, nil
	}
	users.ListUsersFunc = func(ctx context.Context) ([]domain.User, error) {
		return []domain.User{
			{ID: uuid.New(), Username: "alice", Role: domain.RoleAdmin},
			{ID: uuid.New(), Username: "bob", Role: domain.RoleUser},
		}, nil
	}

	result, err := service.ListUsers(context.Background(), adminID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 users, got %d", len(result))
	}
	if result[0].Role != "" {
		t.Error("expected role to be omitted from listing")
	}
}

func TestGetUserInfoIncludesRole(t *testing.T) {
	service, users, _, _ := newTestAuthService()
	users.FindUserByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
		return &domain.User{ID: id, Username: "alice", Role: domain.RoleAdmin}, nil
	}

	info, err := service.GetUserInfo(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if info.Role != domain.RoleAdmin {
		t.Errorf("expected admin role, got %q", info.Role)
	}

	users.FindUserByIDFunc = nil
	if _, err := service.GetUserInfo(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestSendMailToAll(t *testing.T) {
	service, users, _, mailer := newTestAuthService()
	users.ListEmailsFunc = func(ctx context.Context) ([]string, error) {
		return []string{"a@example.com", "b@example.com"}, nil
	}

	n, err := service.SendMailToAll(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n != 2 || len(mailer.LastRecipients) != 2 {
		t.Errorf("expected 2 recipients, got %d", n)
	}
	if mailer.LastSubject != bulkMailSubject {
		t.Errorf("expected subject %q, got %q", bulkMailSubject, mailer.LastSubject)
	}

	mailer.SendBulkFunc = func(ctx context.Context, recipients []string, subject, body string) error {
		return domain.ErrUpstreamUnavailable
	}
	if _, err := service.SendMailToAll(context.Background()); !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Errorf("expected upstream error, got %v", err)
	}
}
