package http

import (
	"mindspace-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// PublishPost godoc
// @Summary Publish a post
// @Tags Post
// @Accept json
// @Produce json
// @Param body body PostRequest true "Post"
// @Success 201 {object} domain.PostResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/post [post]
func (hdl *HTTPHandler) PublishPost(c *fiber.Ctx) error {
	var request PostRequest
	if !hdl.parseBody(c, &request) {
		return BadRequest.Send(c)
	}

	post, err := hdl.posts.PublishPost(c.UserContext(), currentUserID(c), domain.PostRequest{
		Title:   request.Title,
		Content: request.Content,
	})
	if err != nil {
		return replyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetAllPosts godoc
// @Summary All posts, oldest first
// @Tags Post
// @Produce json
// @Success 200 {array} domain.PostResponse
// @Router /api/v1/post/bulk [get]
func (hdl *HTTPHandler) GetAllPosts(c *fiber.Ctx) error {
	posts, err := hdl.posts.GetAllPosts(c.UserContext())
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(posts)
}

// GetPost godoc
// @Summary One post
// @Tags Post
// @Produce json
// @Param id path string true "post id"
// @Success 200 {object} domain.PostResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/post/{id} [get]
func (hdl *HTTPHandler) GetPost(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequest.Send(c)
	}
	post, err := hdl.posts.GetPost(c.UserContext(), id)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost godoc
// @Summary Edit a post (author only)
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "post id"
// @Param body body PostRequest true "Post"
// @Success 200 {object} domain.PostResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/post/{id} [put]
func (hdl *HTTPHandler) UpdatePost(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequest.Send(c)
	}
	var request PostRequest
	if !hdl.parseBody(c, &request) {
		return BadRequest.Send(c)
	}

	post, err := hdl.posts.UpdatePost(c.UserContext(), currentUserID(c), id, domain.PostRequest{
		Title:   request.Title,
		Content: request.Content,
	})
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(post)
}

// DeletePost godoc
// @Summary Delete a post (author or admin)
// @Tags Post
// @Produce json
// @Param id path string true "post id"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/post/{id} [delete]
func (hdl *HTTPHandler) DeletePost(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequest.Send(c)
	}
	if err := hdl.posts.DeletePost(c.UserContext(), currentUserID(c), id); err != nil {
		return replyError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Post deleted successfully"})
}
