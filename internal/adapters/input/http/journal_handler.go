package http

import (
	"mindspace-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// CreateJournal godoc
// @Summary Write a journal entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param body body JournalRequest true "Journal"
// @Success 201 {object} domain.JournalResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/journal [post]
func (hdl *HTTPHandler) CreateJournal(c *fiber.Ctx) error {
	var request JournalRequest
	if !hdl.parseBody(c, &request) {
		return BadRequest.Send(c)
	}

	journal, err := hdl.journals.CreateJournal(c.UserContext(), currentUserID(c), domain.JournalRequest{
		Title:   request.Title,
		Content: request.Content,
	})
	if err != nil {
		return replyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(journal)
}

// GetJournals godoc
// @Summary The caller's journal entries, oldest first
// @Tags Journal
// @Produce json
// @Success 200 {array} domain.JournalResponse
// @Router /api/v1/journal/bulk [get]
func (hdl *HTTPHandler) GetJournals(c *fiber.Ctx) error {
	journals, err := hdl.journals.GetJournals(c.UserContext(), currentUserID(c))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(journals)
}

// GetJournal godoc
// @Summary One journal entry
// @Tags Journal
// @Produce json
// @Param id path string true "journal id"
// @Success 200 {object} domain.JournalResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/journal/{id} [get]
func (hdl *HTTPHandler) GetJournal(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequest.Send(c)
	}
	journal, err := hdl.journals.GetJournal(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(journal)
}

// UpdateJournal godoc
// @Summary Edit a journal entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param id path string true "journal id"
// @Param body body JournalRequest true "Journal"
// @Success 200 {object} domain.JournalResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/journal/{id} [put]
func (hdl *HTTPHandler) UpdateJournal(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequest.Send(c)
	}
	var request JournalRequest
	if !hdl.parseBody(c, &request) {
		return BadRequest.Send(c)
	}

	journal, err := hdl.journals.UpdateJournal(c.UserContext(), currentUserID(c), id, domain.JournalRequest{
		Title:   request.Title,
		Content: request.Content,
	})
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(journal)
}

// DeleteJournal godoc
// @Summary Delete a journal entry
// @Tags Journal
// @Produce json
// @Param id path string true "journal id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/journal/{id} [delete]
func (hdl *HTTPHandler) DeleteJournal(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequest.Send(c)
	}
	if err := hdl.journals.DeleteJournal(c.UserContext(), currentUserID(c), id); err != nil {
		return replyError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Journal deleted successfully"})
}
