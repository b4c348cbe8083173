package usecase

import (
	"time"

	"assistant-relay/internal/chat"
	"assistant-relay/internal/chat/repository"
	pkgLog "assistant-relay/pkg/log"
	"assistant-relay/pkg/openai"
)

// Config holds the credentials and the poll schedule for the chat use case.
type Config struct {
	APIKey      string
	AssistantID string

	// Poll schedule: PollInitialWait doubles each attempt, up to
	// PollMaxAttempts attempts (defaults: 1s and 5 → 1,2,4,8,16s).
	PollMaxAttempts int
	PollInitialWait time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	assistant openai.IOpenAI
	sessions  chat.SessionRegistry
	store     repository.ConversationRepository
	cfg       Config
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	assistant openai.IOpenAI,
	sessions chat.SessionRegistry,
	store repository.ConversationRepository,
	cfg Config,
) *implUseCase {
	if cfg.PollMaxAttempts == 0 {
		cfg.PollMaxAttempts = 5
	}
	if cfg.PollInitialWait == 0 {
		cfg.PollInitialWait = time.Second
	}
	return &implUseCase{
		l:         l,
		assistant: assistant,
		sessions:  sessions,
		store:     store,
		cfg:       cfg,
	}
}
