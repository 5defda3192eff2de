package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post struct - a published blog post
type Post struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Content       string    `gorm:"type:text;not null"`
	ImgURL        string    `gorm:"type:text"`
	PublishedDate time.Time `gorm:"type:timestamp;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"type:timestamp"`
	User          *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName func
func (p *Post) TableName() string {
	return "posts"
}

// BeforeCreate hook - generates UUID before creating
func (p *Post) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// CanDelete reports whether the given user may delete the post.
// Admins may delete any post.
func (p *Post) CanDelete(user *User) bool {
	return p.UserID == user.ID || user.IsAdmin()
}

// CanEdit reports whether the given user may edit the post.
func (p *Post) CanEdit(userID uuid.UUID) bool {
	return p.UserID == userID
}
