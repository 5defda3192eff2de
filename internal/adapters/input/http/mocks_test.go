package http

import (
	"context"

	"mindspace-api/internal/domain"

	"github.com/google/uuid"
)

// MockAuthService implements input.AuthService for testing
type MockAuthService struct {
	SignupFunc        func(ctx context.Context, request domain.SignupRequest) (string, error)
	SigninFunc        func(ctx context.Context, request domain.SigninRequest) (string, error)
	AuthenticateFunc  func(token string) (uuid.UUID, error)
	RequireAdminFunc  func(ctx context.Context, userID uuid.UUID) error
	UpdateUserFunc    func(ctx context.Context, userID uuid.UUID, request domain.UpdateUserRequest) (*domain.UserResponse, error)
	GetUserInfoFunc   func(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error)
	ListUsersFunc     func(ctx context.Context, requesterID uuid.UUID) ([]domain.UserResponse, error)
	SendMailToAllFunc func(ctx context.Context) (int, error)
}

func (m *MockAuthService) Signup(ctx context.Context, request domain.SignupRequest) (string, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, request)
	}
	return "signed-token", nil
}

func (m *MockAuthService) Signin(ctx context.Context, request domain.SigninRequest) (string, error) {
	if m.SigninFunc != nil {
		return m.SigninFunc(ctx, request)
	}
	return "signed-token", nil
}

func (m *MockAuthService) Authenticate(token string) (uuid.UUID, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(token)
	}
	if token == "" {
		return uuid.Nil, domain.ErrMissingToken
	}
	return uuid.Nil, domain.ErrInvalidToken
}

func (m *MockAuthService) RequireAdmin(ctx context.Context, userID uuid.UUID) error {
	if m.RequireAdminFunc != nil {
		return m.RequireAdminFunc(ctx, userID)
	}
	return domain.ErrForbidden
}

func (m *MockAuthService) UpdateUser(ctx context.Context, userID uuid.UUID, request domain.UpdateUserRequest) (*domain.UserResponse, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, userID, request)
	}
	return &domain.UserResponse{ID: userID}, nil
}

func (m *MockAuthService) GetUserInfo(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error) {
	if m.GetUserInfoFunc != nil {
		return m.GetUserInfoFunc(ctx, userID)
	}
	return &domain.UserResponse{ID: userID}, nil
}

func (m *MockAuthService) ListUsers(ctx context.Context, requesterID uuid.UUID) ([]domain.UserResponse, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx, requesterID)
	}
	return []domain.UserResponse{}, nil
}

func (m *MockAuthService) SendMailToAll(ctx context.Context) (int, error) {
	if m.SendMailToAllFunc != nil {
		return m.SendMailToAllFunc(ctx)
	}
	return 0, nil
}

// MockPostService implements input.PostService for testing
type MockPostService struct {
	PublishPostFunc func(ctx context.Context, userID uuid.UUID, request domain.PostRequest) (*domain.PostResponse, error)
	GetAllPostsFunc func(ctx context.Context) ([]domain.PostResponse, error)
	GetPostFunc     func(ctx context.Context, postID uuid.UUID) (*domain.PostResponse, error)
	UpdatePostFunc  func(ctx context.Context, userID, postID uuid.UUID, request domain.PostRequest) (*domain.PostResponse, error)
	DeletePostFunc  func(ctx context.Context, userID, postID uuid.UUID) error
}

func (m *MockPostService) PublishPost(ctx context.Context, userID uuid.UUID, request domain.PostRequest) (*domain.PostResponse, error) {
	if m.PublishPostFunc != nil {
		return m.PublishPostFunc(ctx, userID, request)
	}
	return &domain.PostResponse{ID: uuid.New(), UserID: userID, Title: request.Title, Content: request.Content}, nil
}

func (m *MockPostService) GetAllPosts(ctx context.Context) ([]domain.PostResponse, error) {
	if m.GetAllPostsFunc != nil {
		return m.GetAllPostsFunc(ctx)
	}
	return []domain.PostResponse{}, nil
}

func (m *MockPostService) GetPost(ctx context.Context, postID uuid.UUID) (*domain.PostResponse, error) {
	if m.GetPostFunc != nil {
		return m.GetPostFunc(ctx, postID)
	}
	return nil, domain.ErrPostNotFound
}

func (m *MockPostService) UpdatePost(ctx context.Context, userID, postID uuid.UUID, request domain.PostRequest) (*domain.PostResponse, error) {
	if m.UpdatePostFunc != nil {
		return m.UpdatePostFunc(ctx, userID, postID, request)
	}
	return &domain.PostResponse{ID: postID, UserID: userID, Title: request.Title}, nil
}

func (m *MockPostService) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	if m.DeletePostFunc != nil {
		return m.DeletePostFunc(ctx, userID, postID)
	}
	return nil
}

// MockJournalService implements input.JournalService for testing
type MockJournalService struct {
	GetJournalFunc func(ctx context.Context, userID, journalID uuid.UUID) (*domain.JournalResponse, error)
}

func (m *MockJournalService) CreateJournal(ctx context.Context, userID uuid.UUID, request domain.JournalRequest) (*domain.JournalResponse, error) {
	return &domain.JournalResponse{ID: uuid.New(), UserID: userID, Title: request.Title, Content: request.Content}, nil
}

func (m *MockJournalService) GetJournals(ctx context.Context, userID uuid.UUID) ([]domain.JournalResponse, error) {
	return []domain.JournalResponse{}, nil
}

func (m *MockJournalService) GetJournal(ctx context.Context, userID, journalID uuid.UUID) (*domain.JournalResponse, error) {
	if m.GetJournalFunc != nil {
		return m.GetJournalFunc(ctx, userID, journalID)
	}
	return nil, domain.ErrJournalNotFound
}

func (m *MockJournalService) UpdateJournal(ctx context.Context, userID, journalID uuid.UUID, request domain.JournalRequest) (*domain.JournalResponse, error) {
	return &domain.JournalResponse{ID: journalID, UserID: userID, Title: request.Title}, nil
}

func (m *MockJournalService) DeleteJournal(ctx context.Context, userID, journalID uuid.UUID) error {
	return nil
}

// MockChatService implements input.ChatService for testing
type MockChatService struct {
	HandleChatTurnFunc func(ctx context.Context, userID, userInput string) (string, error)

	// Captured values for assertions
	LastUserID string
}

func (m *MockChatService) HandleChatTurn(ctx context.Context, userID, userInput string) (string, error) {
	m.LastUserID = userID
	if m.HandleChatTurnFunc != nil {
		return m.HandleChatTurnFunc(ctx, userID, userInput)
	}
	return "reply to " + userInput, nil
}
