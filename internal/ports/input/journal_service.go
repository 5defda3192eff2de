package input

import (
	"context"

	"mindspace-api/internal/domain"

	"github.com/google/uuid"
)

// JournalService interface - Input port (use case)
// Journals are private: every operation is scoped to the calling user
type JournalService interface {
	CreateJournal(ctx context.Context, userID uuid.UUID, request domain.JournalRequest) (*domain.JournalResponse, error)
	GetJournals(ctx context.Context, userID uuid.UUID) ([]domain.JournalResponse, error)
	GetJournal(ctx context.Context, userID, journalID uuid.UUID) (*domain.JournalResponse, error)
	UpdateJournal(ctx context.Context, userID, journalID uuid.UUID, request domain.JournalRequest) (*domain.JournalResponse, error)
	DeleteJournal(ctx context.Context, userID, journalID uuid.UUID) error
}
