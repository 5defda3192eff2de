package http

import (
	"net/http"

	"mindspace-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

var (
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: "Invalid inputs"}
	// Unauthorized response
	Unauthorized = Status{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	// InvalidCredentials response
	InvalidCredentials = Status{Code: http.StatusUnauthorized, Message: "Invalid username or password"}
	// Forbidden response
	Forbidden = Status{Code: http.StatusForbidden, Message: "Sorry, Permission denied"}
	// AdminRequired response
	AdminRequired = Status{Code: http.StatusForbidden, Message: "Unauthorized. Admin access required."}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: "Not found"}
	// ConFlict response
	ConFlict = Status{Code: http.StatusBadRequest, Message: "Sorry, Data is conflict"}
	// UsernameTaken response
	UsernameTaken = Status{Code: http.StatusBadRequest, Message: "Username already registered"}
	// EmailTaken response
	EmailTaken = Status{Code: http.StatusBadRequest, Message: "Email already registered"}
	// TooManyRequests response
	TooManyRequests = Status{Code: http.StatusTooManyRequests, Message: "Too many requests, please try again later"}
	// CompletionFailed response
	CompletionFailed = Status{Code: http.StatusInternalServerError, Message: "An error occurred while processing the request"}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: "Internal server error"}
)

// Status struct - an error status and the message shown to clients
type Status struct {
	Code    int
	Message string
}

// Send writes the status as an error body
func (s Status) Send(c *fiber.Ctx) error {
	return c.Status(s.Code).JSON(ErrorResponse{Error: s.Message})
}

type (
	// MessageResponse struct
	MessageResponse struct {
		Message string `json:"message"`
	}

	// ErrorResponse struct
	ErrorResponse struct {
		Error string `json:"error"`
	}

	// UpdateUserResponse struct
	UpdateUserResponse struct {
		Message string               `json:"message"`
		User    *domain.UserResponse `json:"user"`
	}

	// CheckAuthResponse struct
	CheckAuthResponse struct {
		IsLoggedIn bool `json:"isLoggedIn"`
	}

	// HealthResponse struct
	HealthResponse struct {
		Status string `json:"status"`
	}
)
