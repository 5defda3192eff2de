package output

import (
	"context"

	"mindspace-api/internal/domain"

	"github.com/google/uuid"
)

// JournalRepository interface - Output port
type JournalRepository interface {
	CreateJournal(ctx context.Context, journal *domain.Journal) error
	FindJournalByID(ctx context.Context, id uuid.UUID) (*domain.Journal, error)
	// ListJournalsByUser returns the user's journals ordered by creation time, oldest first.
	ListJournalsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Journal, error)
	UpdateJournal(ctx context.Context, journal *domain.Journal) (*domain.Journal, error)
	DeleteJournal(ctx context.Context, id uuid.UUID) error
}
