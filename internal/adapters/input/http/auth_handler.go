package http

import (
	"errors"
	"fmt"

	"mindspace-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Signup godoc
// @Summary Register an account
// @Tags User
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Signup"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/user/signup [post]
func (hdl *HTTPHandler) Signup(c *fiber.Ctx) error {
	var request SignupRequest
	if !hdl.parseBody(c, &request) {
		return BadRequest.Send(c)
	}

	token, err := hdl.auth.Signup(c.UserContext(), domain.SignupRequest{
		Username: request.Username,
		Email:    request.Email,
		Password: request.Password,
		Name:     request.Name,
	})
	if err != nil {
		return replyError(c, err)
	}

	hdl.cookie.setSessionCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(MessageResponse{Message: "User created successfully"})
}

// Signin godoc
// @Summary Sign in
// @Tags User
// @Accept json
// @Produce json
// @Param body body SigninRequest true "Signin"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/user/signin [post]
func (hdl *HTTPHandler) Signin(c *fiber.Ctx) error {
	var request SigninRequest
	if !hdl.parseBody(c, &request) {
		return BadRequest.Send(c)
	}

	token, err := hdl.auth.Signin(c.UserContext(), domain.SigninRequest{
		Username: request.Username,
		Password: request.Password,
	})
	if err != nil {
		return replyError(c, err)
	}

	hdl.cookie.setSessionCookie(c, token)
	return c.JSON(MessageResponse{Message: "Logged in successfully"})
}

// Logout godoc
// @Summary Sign out
// @Tags User
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/v1/user/logout [post]
func (hdl *HTTPHandler) Logout(c *fiber.Ctx) error {
	hdl.cookie.clearSessionCookie(c)
	return c.JSON(MessageResponse{Message: "Logged out successfully"})
}

// CheckAuth godoc
// @Summary Report whether the session cookie is valid
// @Tags User
// @Produce json
// @Success 200 {object} CheckAuthResponse
// @Router /api/v1/user/check-auth [get]
func (hdl *HTTPHandler) CheckAuth(c *fiber.Ctx) error {
	token := c.Cookies(SessionCookieName)
	if token == "" {
		return c.JSON(CheckAuthResponse{IsLoggedIn: false})
	}
	if _, err := hdl.auth.Authenticate(token); err != nil {
		hdl.cookie.clearSessionCookie(c)
		return c.JSON(CheckAuthResponse{IsLoggedIn: false})
	}
	return c.JSON(CheckAuthResponse{IsLoggedIn: true})
}

// UpdateUser godoc
// @Summary Update the current user's profile
// @Tags User
// @Accept json
// @Produce json
// @Param body body UpdateUserRequest true "Update"
// @Success 200 {object} UpdateUserResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/user [put]
func (hdl *HTTPHandler) UpdateUser(c *fiber.Ctx) error {
	var request UpdateUserRequest
	if !hdl.parseBody(c, &request) {
		return BadRequest.Send(c)
	}

	user, err := hdl.auth.UpdateUser(c.UserContext(), currentUserID(c), domain.UpdateUserRequest{
		Name:     request.Name,
		Username: request.Username,
		Img:      request.Img,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return Status{Code: fiber.StatusBadRequest, Message: "Username already taken"}.Send(c)
		}
		return replyError(c, err)
	}

	return c.JSON(UpdateUserResponse{Message: "User updated successfully", User: user})
}

// ListUsers godoc
// @Summary List all users (admin)
// @Tags User
// @Produce json
// @Success 200 {array} domain.UserResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/user/bulk [get]
func (hdl *HTTPHandler) ListUsers(c *fiber.Ctx) error {
	users, err := hdl.auth.ListUsers(c.UserContext(), currentUserID(c))
	if errors.Is(err, domain.ErrForbidden) {
		return AdminRequired.Send(c)
	}
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(users)
}

// UserInfo godoc
// @Summary Current user's profile
// @Tags User
// @Produce json
// @Success 200 {object} domain.UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/user/info [get]
func (hdl *HTTPHandler) UserInfo(c *fiber.Ctx) error {
	user, err := hdl.auth.GetUserInfo(c.UserContext(), currentUserID(c))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(user)
}

// SendMailToAll godoc
// @Summary Send a test mail to every user (admin)
// @Tags User
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/user/send-email-all [get]
func (hdl *HTTPHandler) SendMailToAll(c *fiber.Ctx) error {
	n, err := hdl.auth.SendMailToAll(c.UserContext())
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(MessageResponse{Message: fmt.Sprintf("Test email sent successfully to %d users", n)})
}
