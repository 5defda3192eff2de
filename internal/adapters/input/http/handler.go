package http

import (
	"mindspace-api/internal/ports/input"
	gormdriver "mindspace-api/pkg/database_driver/gorm"
	"mindspace-api/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	auth      input.AuthService
	posts     input.PostService
	journals  input.JournalService
	chat      input.ChatService
	db        *gorm.DB
	validator validator.Validator
	cookie    CookieConfig
}

// New func - Creates new HTTP handler
func New(auth input.AuthService, posts input.PostService, journals input.JournalService, chat input.ChatService, db *gorm.DB, cookie CookieConfig) *HTTPHandler {
	return &HTTPHandler{
		auth:      auth,
		posts:     posts,
		journals:  journals,
		chat:      chat,
		db:        db,
		validator: validator.New(),
		cookie:    cookie,
	}
}

// parseBody decodes and validates the request body into dst
func (hdl *HTTPHandler) parseBody(c *fiber.Ctx, dst interface{}) bool {
	if err := c.BodyParser(dst); err != nil {
		logrus.Debugf("Malformed body on %s: %v", c.Path(), err)
		return false
	}
	if err := hdl.validator.ValidateStruct(dst); err != nil {
		logrus.WithField("fields", validator.Fields(err)).Debugf("Validation failed on %s", c.Path())
		return false
	}
	return true
}

// HealthCheck func
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 500 {object} ErrorResponse
// @Router /health [get]
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	err := gormdriver.Ping(c.UserContext(), hdl.db)
	if err != nil {
		logrus.Errorln(err)
		return InternalServerError.Send(c)
	}
	return c.Status(fiber.StatusOK).JSON(HealthResponse{Status: "ok"})
}
