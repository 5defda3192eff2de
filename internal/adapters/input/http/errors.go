package http

import (
	"errors"

	"mindspace-api/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// statusFor maps a service error onto the response shown to the client.
// Raw error text is never exposed.
func statusFor(err error) Status {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return BadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return InvalidCredentials
	case errors.Is(err, domain.ErrUnauthenticated):
		return Unauthorized
	case errors.Is(err, domain.ErrForbidden):
		return Forbidden
	case errors.Is(err, domain.ErrUserNotFound):
		return Status{Code: fiber.StatusNotFound, Message: "User not found"}
	case errors.Is(err, domain.ErrPostNotFound):
		return Status{Code: fiber.StatusNotFound, Message: "Post not found"}
	case errors.Is(err, domain.ErrJournalNotFound):
		return Status{Code: fiber.StatusNotFound, Message: "Journal not found"}
	case errors.Is(err, domain.ErrNotFound):
		return NotFound
	case errors.Is(err, domain.ErrUsernameTaken):
		return UsernameTaken
	case errors.Is(err, domain.ErrEmailTaken):
		return EmailTaken
	case errors.Is(err, domain.ErrConflict):
		return ConFlict
	case errors.Is(err, domain.ErrCompletionFailure):
		return CompletionFailed
	default:
		return InternalServerError
	}
}

// replyError logs server-side failures and writes the mapped status
func replyError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status.Code >= fiber.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Errorln(err)
	}
	return status.Send(c)
}
