package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Role type
type Role string

const (
	// RoleUser const
	RoleUser Role = "user"
	// RoleAdmin const
	RoleAdmin Role = "admin"
)

// DefaultAvatarURL is assigned to every new account.
const DefaultAvatarURL = "https://upload.wikimedia.org/wikipedia/commons/a/ac/Default_pfp.jpg"

// User struct - Core domain entity
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;"`
	Username  string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_users_username"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	Password  string    `gorm:"type:text;not null"`
	Name      string    `gorm:"type:varchar(25)"`
	Img       string    `gorm:"type:text"`
	Role      Role      `gorm:"type:varchar(10);not null;default:user"`
	CreatedAt time.Time `gorm:"type:timestamp"`
	UpdatedAt time.Time `gorm:"type:timestamp"`
}

// TableName func
func (u *User) TableName() string {
	return "users"
}

// BeforeCreate hook - generates UUID before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	logrus.Info("Migrate database ...")
	err := db.AutoMigrate(&User{}, &Post{}, &Journal{})
	if err != nil {
		panic(err)
	}
}
