package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit struct - requests allowed per client IP within Window
type RateLimit struct {
	Max    int
	Window time.Duration
}

// RateLimits struct
type RateLimits struct {
	API           RateLimit
	CreatePost    RateLimit
	CreateJournal RateLimit
	ListJournals  RateLimit
}

// DefaultRateLimits are the production limits
var DefaultRateLimits = RateLimits{
	API:           RateLimit{Max: 100, Window: 15 * time.Minute},
	CreatePost:    RateLimit{Max: 35, Window: 15 * time.Minute},
	CreateJournal: RateLimit{Max: 35, Window: 15 * time.Minute},
	ListJournals:  RateLimit{Max: 50, Window: 15 * time.Minute},
}

func newLimiter(limit RateLimit) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          limit.Max,
		Expiration:   limit.Window,
		LimitReached: RateLimited,
	})
}

// Register mounts the /api/v1 routes on router
func (hdl *HTTPHandler) Register(router fiber.Router, limits RateLimits) {
	v1 := router.Group("/api/v1")

	user := v1.Group("/user")
	{
		user.Post("/signup", hdl.Signup)
		user.Post("/signin", hdl.Signin)
		user.Post("/logout", hdl.Logout)
		user.Get("/check-auth", hdl.CheckAuth)
		user.Put("/", hdl.RequireAuth, hdl.UpdateUser)
		user.Get("/bulk", hdl.RequireAuth, hdl.ListUsers)
		user.Get("/info", hdl.RequireAuth, hdl.UserInfo)
		user.Get("/send-email-all", hdl.RequireAuth, hdl.RequireAdmin, hdl.SendMailToAll)
	}

	post := v1.Group("/post", newLimiter(limits.API), hdl.RequireAuth)
	{
		post.Post("/", newLimiter(limits.CreatePost), hdl.PublishPost)
		post.Get("/bulk", hdl.GetAllPosts)
		post.Get("/:id", hdl.GetPost)
		post.Delete("/:id", hdl.DeletePost)
		post.Put("/:id", hdl.UpdatePost)
	}

	journal := v1.Group("/journal", hdl.RequireAuth)
	{
		journal.Post("/", newLimiter(limits.CreateJournal), hdl.CreateJournal)
		journal.Get("/bulk", newLimiter(limits.ListJournals), hdl.GetJournals)
		journal.Get("/:id", hdl.GetJournal)
		journal.Put("/:id", hdl.UpdateJournal)
		journal.Delete("/:id", hdl.DeleteJournal)
	}

	bot := v1.Group("/bot", hdl.RequireAuth)
	{
		bot.Post("/chat", hdl.Chat)
	}
}
