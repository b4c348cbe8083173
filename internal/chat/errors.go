package chat

import "errors"

// Domain-specific errors for the chat package. The messages are part of the
// HTTP contract and must not change.
var (
	ErrMessageRequired    = errors.New("Message is required")
	ErrMissingCredentials = errors.New("API key or Assistant ID is missing.")
	ErrRunFailed          = errors.New("Assistant run failed")
	ErrNoResponse         = errors.New("No response from Assistant")
)
