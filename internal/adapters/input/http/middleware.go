package http

import (
	"errors"

	"mindspace-api/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const userIDKey = "userID"

// RequireAuth resolves the session cookie to a user id stored in Locals.
// An invalid token also clears the cookie.
func (hdl *HTTPHandler) RequireAuth(c *fiber.Ctx) error {
	token := c.Cookies(SessionCookieName)
	userID, err := hdl.auth.Authenticate(token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			logrus.Debugf("Rejected session token: %v", err)
			hdl.cookie.clearSessionCookie(c)
		}
		return Unauthorized.Send(c)
	}
	c.Locals(userIDKey, userID)
	return c.Next()
}

// RequireAdmin must run after RequireAuth
func (hdl *HTTPHandler) RequireAdmin(c *fiber.Ctx) error {
	err := hdl.auth.RequireAdmin(c.UserContext(), currentUserID(c))
	if errors.Is(err, domain.ErrForbidden) {
		return AdminRequired.Send(c)
	}
	if err != nil {
		return replyError(c, err)
	}
	return c.Next()
}

// RateLimited is the limiter's LimitReached handler
func RateLimited(c *fiber.Ctx) error {
	return TooManyRequests.Send(c)
}

func currentUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(userIDKey).(uuid.UUID)
	return id
}

func pathID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
