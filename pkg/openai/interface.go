package openai

import "context"

// IOpenAI is the interface of the Assistants API client.
type IOpenAI interface {
	// CreateThread creates a new empty conversation thread.
	CreateThread(ctx context.Context) (*Thread, error)

	// CreateMessage appends a message to a thread.
	CreateMessage(ctx context.Context, threadID, role, content string) (*Message, error)

	// CreateRun starts an assistant run against the thread's current state.
	CreateRun(ctx context.Context, threadID, assistantID string) (*Run, error)

	// GetRun fetches the current state of a run.
	GetRun(ctx context.Context, threadID, runID string) (*Run, error)

	// ListMessages lists all messages in a thread, most recent first.
	ListMessages(ctx context.Context, threadID string) ([]Message, error)
}
