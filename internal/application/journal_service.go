package application

import (
	"context"

	"mindspace-api/internal/domain"
	"mindspace-api/internal/ports/input"
	"mindspace-api/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure JournalService implements JournalService interface
var _ input.JournalService = (*JournalService)(nil)

// JournalService struct - Application service implementing journal use cases
type JournalService struct {
	journals output.JournalRepository
}

// NewJournalService func - Creates new journal service
func NewJournalService(journals output.JournalRepository) *JournalService {
	return &JournalService{
		journals: journals,
	}
}

// CreateJournal func
func (s *JournalService) CreateJournal(ctx context.Context, userID uuid.UUID, request domain.JournalRequest) (*domain.JournalResponse, error) {
	journal := &domain.Journal{
		UserID:  userID,
		Title:   request.Title,
		Content: request.Content,
	}
	if err := s.journals.CreateJournal(ctx, journal); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	resp := domain.NewJournalResponse(journal)
	return &resp, nil
}

// GetJournals func
func (s *JournalService) GetJournals(ctx context.Context, userID uuid.UUID) ([]domain.JournalResponse, error) {
	journals, err := s.journals.ListJournalsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.JournalResponse, 0, len(journals))
	for i := range journals {
		result = append(result, domain.NewJournalResponse(&journals[i]))
	}
	return result, nil
}

// ownedJournal loads a journal and hides it from everyone but its author
func (s *JournalService) ownedJournal(ctx context.Context, userID, journalID uuid.UUID) (*domain.Journal, error) {
	journal, err := s.journals.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if !journal.OwnedBy(userID) {
		return nil, domain.ErrJournalNotFound
	}
	return journal, nil
}

// GetJournal func
func (s *JournalService) GetJournal(ctx context.Context, userID, journalID uuid.UUID) (*domain.JournalResponse, error) {
	journal, err := s.ownedJournal(ctx, userID, journalID)
	if err != nil {
		return nil, err
	}
	resp := domain.NewJournalResponse(journal)
	return &resp, nil
}

// UpdateJournal func
func (s *JournalService) UpdateJournal(ctx context.Context, userID, journalID uuid.UUID, request domain.JournalRequest) (*domain.JournalResponse, error) {
	journal, err := s.ownedJournal(ctx, userID, journalID)
	if err != nil {
		return nil, err
	}

	journal.Title = request.Title
	journal.Content = request.Content

	updated, err := s.journals.UpdateJournal(ctx, journal)
	if err != nil {
		return nil, err
	}
	resp := domain.NewJournalResponse(updated)
	return &resp, nil
}

// DeleteJournal func
func (s *JournalService) DeleteJournal(ctx context.Context, userID, journalID uuid.UUID) error {
	if _, err := s.ownedJournal(ctx, userID, journalID); err != nil {
		return err
	}
	return s.journals.DeleteJournal(ctx, journalID)
}
