package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Journal struct - a private journal entry, visible to its author only
type Journal struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:timestamp"`
	UpdatedAt time.Time `gorm:"type:timestamp"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName func
func (j *Journal) TableName() string {
	return "journals"
}

// BeforeCreate hook - generates UUID before creating
func (j *Journal) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	j.ID = id
	return nil
}

// OwnedBy func
func (j *Journal) OwnedBy(userID uuid.UUID) bool {
	return j.UserID == userID
}
