package output

import (
	"context"

	"mindspace-api/internal/domain"
)

// CompletionClient interface - Output port
// Defines what the application needs from an OpenAI-compatible
// chat completion API.
type CompletionClient interface {
	// ChatCompletion sends a non-streaming chat completion request.
	// The request's messages are a copy; implementations must not retain them.
	// Returns an error if the request fails or the response carries no choices.
	ChatCompletion(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error)
}
