package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName holds the signed session token
const SessionCookieName = "token"

const sessionMaxAge = 24 * time.Hour

// CookieConfig struct - production cookies are Secure and cross-site
type CookieConfig struct {
	Production bool
}

func (cc CookieConfig) sameSite() string {
	if cc.Production {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteLaxMode
}

// setSessionCookie stores token for 24 hours
func (cc CookieConfig) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		Expires:  time.Now().Add(sessionMaxAge),
		Secure:   cc.Production,
		HTTPOnly: true,
		SameSite: cc.sameSite(),
	})
}

// clearSessionCookie expires the cookie with the attributes it was set with
func (cc CookieConfig) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   cc.Production,
		HTTPOnly: true,
		SameSite: cc.sameSite(),
	})
}
