package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Adapters and services wrap these so the HTTP layer can map
// them with errors.Is.
var (
	// ErrValidation indicates malformed or missing request fields
	ErrValidation = errors.New("validation failed")

	// ErrUnauthenticated indicates a missing, invalid or expired session
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden indicates an authenticated caller lacks permission
	ErrForbidden = errors.New("permission denied")

	// ErrNotFound indicates the referenced record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a uniqueness violation
	ErrConflict = errors.New("conflict")

	// ErrCompletionFailure indicates the completion service errored or
	// returned an unusable response
	ErrCompletionFailure = errors.New("completion failure")

	// ErrUpstreamUnavailable indicates a third-party service could not be reached
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

var (
	ErrMissingToken       = fmt.Errorf("%w: missing token", ErrUnauthenticated)
	ErrInvalidToken       = fmt.Errorf("%w: invalid or expired token", ErrUnauthenticated)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrUnauthenticated)

	ErrUsernameTaken = fmt.Errorf("%w: username already registered", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrConflict)

	ErrUserNotFound    = fmt.Errorf("user: %w", ErrNotFound)
	ErrPostNotFound    = fmt.Errorf("post: %w", ErrNotFound)
	ErrJournalNotFound = fmt.Errorf("journal: %w", ErrNotFound)

	ErrEmptyChatInput = fmt.Errorf("%w: userInput is required", ErrValidation)
)

// Completion service transport errors

var (
	// ErrCompletionUnavailable indicates the completion service is unavailable
	ErrCompletionUnavailable = fmt.Errorf("%w: completion service", ErrUpstreamUnavailable)

	// ErrInvalidRequest indicates the completion service rejected the request (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")
)
