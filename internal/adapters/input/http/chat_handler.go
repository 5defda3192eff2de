package http

import (
	"github.com/gofiber/fiber/v2"
)

// Chat godoc
// @Summary Send one chat message and receive the assistant's reply
// @Tags Bot
// @Accept json
// @Produce json
// @Param body body ChatRequest true "Chat"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/bot/chat [post]
func (hdl *HTTPHandler) Chat(c *fiber.Ctx) error {
	var request ChatRequest
	if !hdl.parseBody(c, &request) {
		return BadRequest.Send(c)
	}

	reply, err := hdl.chat.HandleChatTurn(c.UserContext(), currentUserID(c).String(), request.UserInput)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(MessageResponse{Message: reply})
}
