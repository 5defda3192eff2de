package application

import (
	"context"
	"sync"
	"time"

	"mindspace-api/internal/domain"

	"github.com/google/uuid"
)

// Mock implementations for testing

// MockUserRepository implements output.UserRepository for testing
type MockUserRepository struct {
	CreateUserFunc         func(ctx context.Context, user *domain.User) error
	FindUserByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindUserByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	UpdateUserFunc         func(ctx context.Context, id uuid.UUID, request domain.UpdateUserRequest) (*domain.User, error)
	ListUsersFunc          func(ctx context.Context) ([]domain.User, error)
	ListEmailsFunc         func(ctx context.Context) ([]string, error)

	// Captured values for assertions
	CreatedUser *domain.User
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	m.CreatedUser = user
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user)
	}
	user.ID = uuid.New()
	return nil
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindUserByIDFunc != nil {
		return m.FindUserByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFunc != nil {
		return m.FindUserByUsernameFunc(ctx, username)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, id uuid.UUID, request domain.UpdateUserRequest) (*domain.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, request)
	}
	return &domain.User{ID: id}, nil
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) ListEmails(ctx context.Context) ([]string, error) {
	if m.ListEmailsFunc != nil {
		return m.ListEmailsFunc(ctx)
	}
	return nil, nil
}

// MockPasswordHasher implements output.PasswordHasher for testing
type MockPasswordHasher struct{}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// MockTokenManager implements output.TokenManager for testing
type MockTokenManager struct {
	VerifyFunc func(token string) (uuid.UUID, error)

	// Captured values for assertions
	IssuedFor uuid.UUID
}

func (m *MockTokenManager) Issue(userID uuid.UUID) (string, error) {
	m.IssuedFor = userID
	return "token-" + userID.String(), nil
}

func (m *MockTokenManager) Verify(token string) (uuid.UUID, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	return uuid.Nil, domain.ErrInvalidToken
}

// MockMailer implements output.Mailer for testing
type MockMailer struct {
	SendBulkFunc func(ctx context.Context, recipients []string, subject, body string) error

	// Captured values for assertions
	LastRecipients []string
	LastSubject    string
}

func (m *MockMailer) SendBulk(ctx context.Context, recipients []string, subject, body string) error {
	m.LastRecipients = recipients
	m.LastSubject = subject
	if m.SendBulkFunc != nil {
		return m.SendBulkFunc(ctx, recipients, subject, body)
	}
	return nil
}

// MockPostRepository implements output.PostRepository for testing
type MockPostRepository struct {
	CreatePostFunc   func(ctx context.Context, post *domain.Post) error
	FindPostByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListPostsFunc    func(ctx context.Context) ([]domain.Post, error)
	UpdatePostFunc   func(ctx context.Context, post *domain.Post) (*domain.Post, error)
	DeletePostFunc   func(ctx context.Context, id uuid.UUID) error

	// Captured values for assertions
	CreatedPost *domain.Post
	UpdatedPost *domain.Post
	DeletedIDs  []uuid.UUID
}

func (m *MockPostRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	m.CreatedPost = post
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(ctx, post)
	}
	post.ID = uuid.New()
	return nil
}

func (m *MockPostRepository) FindPostByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.FindPostByIDFunc != nil {
		return m.FindPostByIDFunc(ctx, id)
	}
	return nil, domain.ErrPostNotFound
}

func (m *MockPostRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	if m.ListPostsFunc != nil {
		return m.ListPostsFunc(ctx)
	}
	return nil, nil
}

func (m *MockPostRepository) UpdatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	m.UpdatedPost = post
	if m.UpdatePostFunc != nil {
		return m.UpdatePostFunc(ctx, post)
	}
	return post, nil
}

func (m *MockPostRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	m.DeletedIDs = append(m.DeletedIDs, id)
	if m.DeletePostFunc != nil {
		return m.DeletePostFunc(ctx, id)
	}
	return nil
}

// MockGifClient implements output.GifClient for testing
type MockGifClient struct {
	RandomGifURLFunc func(ctx context.Context) (string, error)
}

func (m *MockGifClient) RandomGifURL(ctx context.Context) (string, error) {
	if m.RandomGifURLFunc != nil {
		return m.RandomGifURLFunc(ctx)
	}
	return "https://media.giphy.com/test.gif", nil
}

// MockJournalRepository implements output.JournalRepository for testing
type MockJournalRepository struct {
	CreateJournalFunc      func(ctx context.Context, journal *domain.Journal) error
	FindJournalByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Journal, error)
	ListJournalsByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Journal, error)
	UpdateJournalFunc      func(ctx context.Context, journal *domain.Journal) (*domain.Journal, error)
	DeleteJournalFunc      func(ctx context.Context, id uuid.UUID) error

	// Captured values for assertions
	UpdateCalls int
	DeleteCalls int
}

func (m *MockJournalRepository) CreateJournal(ctx context.Context, journal *domain.Journal) error {
	if m.CreateJournalFunc != nil {
		return m.CreateJournalFunc(ctx, journal)
	}
	journal.ID = uuid.New()
	return nil
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, id uuid.UUID) (*domain.Journal, error) {
	if m.FindJournalByIDFunc != nil {
		return m.FindJournalByIDFunc(ctx, id)
	}
	return nil, domain.ErrJournalNotFound
}

func (m *MockJournalRepository) ListJournalsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Journal, error) {
	if m.ListJournalsByUserFunc != nil {
		return m.ListJournalsByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockJournalRepository) UpdateJournal(ctx context.Context, journal *domain.Journal) (*domain.Journal, error) {
	m.UpdateCalls++
	if m.UpdateJournalFunc != nil {
		return m.UpdateJournalFunc(ctx, journal)
	}
	return journal, nil
}

func (m *MockJournalRepository) DeleteJournal(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls++
	if m.DeleteJournalFunc != nil {
		return m.DeleteJournalFunc(ctx, id)
	}
	return nil
}

// MockCompletionClient implements output.CompletionClient for testing
type MockCompletionClient struct {
	ChatCompletionFunc func(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error)

	mu sync.Mutex
	// Captured values for assertions
	Requests []domain.ChatCompletionRequest
}

func (m *MockCompletionClient) ChatCompletion(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, request)
	m.mu.Unlock()
	if m.ChatCompletionFunc != nil {
		return m.ChatCompletionFunc(ctx, request)
	}
	return &domain.ChatCompletionResponse{Content: "AI response"}, nil
}

func (m *MockCompletionClient) LastRequest() domain.ChatCompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Requests[len(m.Requests)-1]
}

// MockConversationStore implements output.ConversationStore for testing.
// It keeps one entry per user behind a single mutex.
type MockConversationStore struct {
	mu       sync.Mutex
	entries  map[string]*domain.ConversationEntry
	SweepHit int
}

func NewMockConversationStore() *MockConversationStore {
	return &MockConversationStore{entries: make(map[string]*domain.ConversationEntry)}
}

func (m *MockConversationStore) WithEntry(userID string, fn func(entry *domain.ConversationEntry) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[userID]
	if !ok {
		entry = domain.NewConversationEntry(userID, domain.DefaultSystemPrompt, domain.DefaultMaxMessages, false, time.Now())
		m.entries[userID] = entry
	}
	entry.Touch(time.Now())
	return fn(entry)
}

func (m *MockConversationStore) Sweep() {
	m.SweepHit++
}

func (m *MockConversationStore) Entry(userID string) *domain.ConversationEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[userID]
}
