package output

import "mindspace-api/internal/domain"

// ConversationStore interface - Output port
// Holds one ConversationEntry per active user. Implementations must be safe
// for concurrent use and must serialize turns of the same user.
type ConversationStore interface {
	// WithEntry runs fn with exclusive access to the user's entry, creating a
	// seeded entry first if none exists. Changes fn makes to the entry are kept
	// even when fn returns an error. The error from fn is returned as is.
	WithEntry(userID string, fn func(entry *domain.ConversationEntry) error) error

	// Sweep removes entries that have been idle longer than the store's timeout.
	Sweep()
}
