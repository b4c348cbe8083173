package chat

import (
	"context"

	"assistant-relay/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Chat forwards one user message to the assistant and returns its reply.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}

// SessionRegistry maps a user id to the persistent assistant thread holding
// that user's conversation, creating the thread on first contact.
type SessionRegistry interface {
	ResolveOrCreate(ctx context.Context, userID string) (string, error)

	// InstructionMessageID returns the id of the instruction message recorded
	// for the user, if any. Messages with this id are excluded from
	// user-visible output.
	InstructionMessageID(userID string) (string, bool)
}
