package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"assistant-relay/pkg/log"
	"assistant-relay/pkg/openai"
)

const (
	maxSessions = 10000
	sessionTTL  = 24 * time.Hour
)

// Registry maps user ids to assistant thread ids and records instruction
// message ids to exclude from user-visible output. Entries expire after
// sessionTTL so the maps cannot grow without bound.
//
// The underlying LRU is safe for concurrent use. Two concurrent first-time
// requests for the same user may still race and create two threads; both are
// valid, and the last write wins.
type Registry struct {
	l            log.Logger
	assistant    openai.IOpenAI
	sessions     *expirable.LRU[string, string]
	instructions *expirable.LRU[string, string]
}

// New creates a new session Registry backed by the given assistant client.
func New(l log.Logger, assistant openai.IOpenAI) *Registry {
	return &Registry{
		l:            l,
		assistant:    assistant,
		sessions:     expirable.NewLRU[string, string](maxSessions, nil, sessionTTL),
		instructions: expirable.NewLRU[string, string](maxSessions, nil, sessionTTL),
	}
}

// ResolveOrCreate returns the thread id recorded for the user, creating a new
// thread on the assistant service on first contact.
func (r *Registry) ResolveOrCreate(ctx context.Context, userID string) (string, error) {
	if threadID, ok := r.sessions.Get(userID); ok {
		return threadID, nil
	}

	thread, err := r.assistant.CreateThread(ctx)
	if err != nil {
		return "", err
	}

	r.sessions.Add(userID, thread.ID)
	r.l.Infof(ctx, "session registry: created thread %s for user %s", thread.ID, userID)
	return thread.ID, nil
}

// InstructionMessageID returns the instruction message id recorded for the
// user, if any.
func (r *Registry) InstructionMessageID(userID string) (string, bool) {
	return r.instructions.Get(userID)
}

// SetInstructionMessageID records an instruction message id for the user so
// the answer selection skips it.
func (r *Registry) SetInstructionMessageID(userID, messageID string) {
	r.instructions.Add(userID, messageID)
}
