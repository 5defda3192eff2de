package input

import "context"

// ChatService interface - Input port (use case)
type ChatService interface {
	// HandleChatTurn records userInput in the user's conversation, asks the
	// completion service for a reply and returns it.
	HandleChatTurn(ctx context.Context, userID, userInput string) (string, error)
}
