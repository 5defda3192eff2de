package domain

import "time"

// ConversationEntry represents the rolling chat transcript of one user.
// It is owned by the conversation store; callers mutate it only while
// holding the entry for a turn.
type ConversationEntry struct {
	UserID       string
	Messages     []ChatMessage
	LastActivity time.Time
	maxMessages  int
	pinSystem    bool
}

// NewConversationEntry creates an entry seeded with a single system message.
// maxMessages counts the system message. When pinSystem is set the system
// message is never trimmed and the remaining slots hold the latest turns.
func NewConversationEntry(userID, systemPrompt string, maxMessages int, pinSystem bool, now time.Time) *ConversationEntry {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	if pinSystem && maxMessages < 2 {
		maxMessages = 2
	}
	return &ConversationEntry{
		UserID: userID,
		Messages: []ChatMessage{
			{Role: ChatMessageRoleSystem, Content: systemPrompt},
		},
		LastActivity: now,
		maxMessages:  maxMessages,
		pinSystem:    pinSystem,
	}
}

// Touch records activity at now
func (e *ConversationEntry) Touch(now time.Time) {
	e.LastActivity = now
}

// IsIdle checks if the entry has not been touched for longer than timeout
func (e *ConversationEntry) IsIdle(now time.Time, timeout time.Duration) bool {
	return IdleFor(e.LastActivity, now, timeout)
}

// Append adds a message and trims the transcript back to the window
func (e *ConversationEntry) Append(msg ChatMessage) {
	e.Messages = append(e.Messages, msg)
	e.trim()
}

func (e *ConversationEntry) trim() {
	if len(e.Messages) <= e.maxMessages {
		return
	}

	if e.pinSystem && e.Messages[0].Role == ChatMessageRoleSystem {
		keep := e.maxMessages - 1
		trimmed := make([]ChatMessage, 0, e.maxMessages)
		trimmed = append(trimmed, e.Messages[0])
		trimmed = append(trimmed, e.Messages[len(e.Messages)-keep:]...)
		e.Messages = trimmed
		return
	}

	// Drop from the front, the seeded system message included.
	trimmed := make([]ChatMessage, e.maxMessages)
	copy(trimmed, e.Messages[len(e.Messages)-e.maxMessages:])
	e.Messages = trimmed
}

// GetHistory returns a copy of the transcript
func (e *ConversationEntry) GetHistory() []ChatMessage {
	if len(e.Messages) == 0 {
		return []ChatMessage{}
	}

	// Return a copy to prevent external modification
	history := make([]ChatMessage, len(e.Messages))
	copy(history, e.Messages)
	return history
}
