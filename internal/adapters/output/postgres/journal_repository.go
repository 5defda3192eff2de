package postgres

import (
	"context"

	"mindspace-api/internal/domain"
	"mindspace-api/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure JournalRepository implements JournalRepository interface
var _ output.JournalRepository = (*JournalRepository)(nil)

// JournalRepository struct - Secondary/Driven adapter for PostgreSQL
type JournalRepository struct {
	dbGorm *gorm.DB
}

// NewJournalRepository func
func NewJournalRepository(dbGorm *gorm.DB) *JournalRepository {
	return &JournalRepository{
		dbGorm: dbGorm,
	}
}

func preloadJournalAuthor(db *gorm.DB) *gorm.DB {
	return db.Preload("User", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "name", "username", "email")
	})
}

// CreateJournal func
func (p *JournalRepository) CreateJournal(ctx context.Context, journal *domain.Journal) error {
	if err := p.dbGorm.WithContext(ctx).Create(journal).Error; err != nil {
		logrus.Errorln(err)
		return translateError(err, domain.ErrJournalNotFound)
	}
	return nil
}

// FindJournalByID func
func (p *JournalRepository) FindJournalByID(ctx context.Context, id uuid.UUID) (*domain.Journal, error) {
	var journal domain.Journal
	if err := preloadJournalAuthor(p.dbGorm.WithContext(ctx)).Where("id = ?", id).First(&journal).Error; err != nil {
		return nil, translateError(err, domain.ErrJournalNotFound)
	}
	return &journal, nil
}

// ListJournalsByUser func
func (p *JournalRepository) ListJournalsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Journal, error) {
	var journals []domain.Journal
	err := preloadJournalAuthor(p.dbGorm.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&journals).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return journals, nil
}

// UpdateJournal func
func (p *JournalRepository) UpdateJournal(ctx context.Context, journal *domain.Journal) (*domain.Journal, error) {
	result := p.dbGorm.WithContext(ctx).Model(&domain.Journal{}).Where("id = ?", journal.ID).Updates(map[string]interface{}{
		"title":   journal.Title,
		"content": journal.Content,
	})
	if result.Error != nil {
		logrus.Errorln(result.Error)
		return nil, translateError(result.Error, domain.ErrJournalNotFound)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrJournalNotFound
	}
	return p.FindJournalByID(ctx, journal.ID)
}

// DeleteJournal func
func (p *JournalRepository) DeleteJournal(ctx context.Context, id uuid.UUID) error {
	result := p.dbGorm.WithContext(ctx).Where("id = ?", id).Delete(&domain.Journal{})
	if result.Error != nil {
		logrus.Errorln(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrJournalNotFound
	}
	return nil
}
