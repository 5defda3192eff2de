package domain

import "time"

// ChatMessageRole represents the author of a chat message
type ChatMessageRole string

const (
	// ChatMessageRoleSystem - persona instruction
	ChatMessageRoleSystem ChatMessageRole = "system"
	// ChatMessageRoleUser - message typed by the user
	ChatMessageRoleUser ChatMessageRole = "user"
	// ChatMessageRoleAssistant - reply produced by the completion service
	ChatMessageRoleAssistant ChatMessageRole = "assistant"
)

// Chat defaults. Zero values in configuration fall back to these.
const (
	DefaultSystemPrompt    = "You are a helpful AI therapist answer short and precise."
	DefaultChatModel       = "llama3-8b-8192"
	DefaultTemperature     = float32(0.7)
	DefaultMaxTokens       = 500
	DefaultMaxMessages     = 5
	DefaultCleanupInterval = 30 * time.Minute
)

// ChatMessage is one message of a conversation
type ChatMessage struct {
	Role    ChatMessageRole
	Content string
}

// Valid reports whether the role is one the completion service accepts.
func (r ChatMessageRole) Valid() bool {
	switch r {
	case ChatMessageRoleSystem, ChatMessageRoleUser, ChatMessageRoleAssistant:
		return true
	}
	return false
}

type (
	// ChatCompletionRequest struct - request sent to the completion service
	ChatCompletionRequest struct {
		Messages    []ChatMessage
		Model       *string
		Temperature *float32
		MaxTokens   *int
	}

	// ChatCompletionResponse struct - generated reply and usage statistics
	ChatCompletionResponse struct {
		Content          string
		Model            string
		PromptTokens     int
		CompletionTokens int
		TotalTokens      int
	}
)
