package domain

import "github.com/google/uuid"

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// SignupRequest struct - Domain signup request DTO
	SignupRequest struct {
		Username string
		Email    string
		Password string
		Name     string
	}

	// SigninRequest struct - Domain signin request DTO
	SigninRequest struct {
		Username string
		Password string
	}

	// UpdateUserRequest struct - nil fields are left untouched
	UpdateUserRequest struct {
		Name     *string
		Username *string
		Img      *string
	}

	// UserResponse struct - Domain user response DTO
	UserResponse struct {
		ID       uuid.UUID `json:"id"`
		Username string    `json:"username"`
		Name     string    `json:"name"`
		Img      string    `json:"img"`
		Email    string    `json:"email"`
		Role     Role      `json:"role,omitempty"`
	}

	// AuthorResponse struct - author summary embedded in posts and journals
	AuthorResponse struct {
		ID       *uuid.UUID `json:"id,omitempty"`
		Name     string     `json:"name"`
		Username string     `json:"username"`
		Img      string     `json:"img,omitempty"`
		Email    string     `json:"email,omitempty"`
		Role     Role       `json:"role,omitempty"`
	}

	// PostRequest struct - Domain post request DTO
	PostRequest struct {
		Title   string
		Content string
	}

	// PostResponse struct - Domain post response DTO
	PostResponse struct {
		ID            uuid.UUID       `json:"id"`
		UserID        uuid.UUID       `json:"userId"`
		Title         string          `json:"title"`
		Content       string          `json:"content"`
		ImgURL        string          `json:"imgUrl"`
		PublishedDate string          `json:"publishedDate"`
		User          *AuthorResponse `json:"User,omitempty"`
	}

	// JournalRequest struct - Domain journal request DTO
	JournalRequest struct {
		Title   string
		Content string
	}

	// JournalResponse struct - Domain journal response DTO
	JournalResponse struct {
		ID        uuid.UUID       `json:"id"`
		UserID    uuid.UUID       `json:"userId"`
		Title     string          `json:"title"`
		Content   string          `json:"content"`
		CreatedAt string          `json:"createdAt"`
		UpdatedAt string          `json:"updatedAt"`
		User      *AuthorResponse `json:"User,omitempty"`
	}
)

// NewUserResponse maps a user entity to its public shape.
func NewUserResponse(u *User, withRole bool) UserResponse {
	resp := UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Img:      u.Img,
		Email:    u.Email,
	}
	if withRole {
		resp.Role = u.Role
	}
	return resp
}

// NewPostResponse maps a post and its preloaded author.
func NewPostResponse(p *Post) PostResponse {
	resp := PostResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		Title:         p.Title,
		Content:       p.Content,
		ImgURL:        p.ImgURL,
		PublishedDate: FormatTimestamp(p.PublishedDate),
	}
	if p.User != nil {
		id := p.User.ID
		resp.User = &AuthorResponse{
			ID:       &id,
			Name:     p.User.Name,
			Username: p.User.Username,
			Img:      p.User.Img,
			Role:     p.User.Role,
		}
	}
	return resp
}

// NewJournalResponse maps a journal and its preloaded author.
func NewJournalResponse(j *Journal) JournalResponse {
	resp := JournalResponse{
		ID:        j.ID,
		UserID:    j.UserID,
		Title:     j.Title,
		Content:   j.Content,
		CreatedAt: FormatTimestamp(j.CreatedAt),
		UpdatedAt: FormatTimestamp(j.UpdatedAt),
	}
	if j.User != nil {
		resp.User = &AuthorResponse{
			Name:     j.User.Name,
			Username: j.User.Username,
			Email:    j.User.Email,
		}
	}
	return resp
}
