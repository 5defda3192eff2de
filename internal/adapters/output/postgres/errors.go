package postgres

import (
	"errors"

	"mindspace-api/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Unique index names declared on domain.User
const (
	usernameIndex = "idx_users_username"
	emailIndex    = "idx_users_email"
)

// translateError maps driver errors onto domain errors. notFound is
// returned for gorm.ErrRecordNotFound.
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case usernameIndex:
			return domain.ErrUsernameTaken
		case emailIndex:
			return domain.ErrEmailTaken
		default:
			return domain.ErrConflict
		}
	}
	return err
}
