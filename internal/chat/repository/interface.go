package repository

import (
	"context"

	"assistant-relay/internal/model"
)

// ConversationRepository persists the per-user conversation log.
type ConversationRepository interface {
	// Append adds one exchange under the user's key, creating it if absent.
	Append(ctx context.Context, userID string, exchange model.Exchange) error

	// Load returns the full persisted log keyed by user id.
	Load(ctx context.Context) (map[string][]model.Exchange, error)
}
