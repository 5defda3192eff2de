package http

type (
	// SignupRequest struct - HTTP request DTO
	SignupRequest struct {
		Username string `json:"username" validate:"required,min=4,max=20"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"max=25"`
	}

	// SigninRequest struct - HTTP request DTO
	SigninRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	// UpdateUserRequest struct - omitted fields are left unchanged
	UpdateUserRequest struct {
		Name     *string `json:"name" validate:"omitempty,max=25"`
		Username *string `json:"username" validate:"omitempty,min=4,max=20"`
		Img      *string `json:"img" validate:"omitempty,url"`
	}

	// PostRequest struct - HTTP request DTO
	PostRequest struct {
		Title   string `json:"title" validate:"required"`
		Content string `json:"content" validate:"required"`
	}

	// JournalRequest struct - HTTP request DTO
	JournalRequest struct {
		Title   string `json:"title" validate:"required"`
		Content string `json:"content" validate:"required"`
	}

	// ChatRequest struct - HTTP request DTO
	ChatRequest struct {
		UserInput string `json:"userInput" validate:"required"`
	}
)
