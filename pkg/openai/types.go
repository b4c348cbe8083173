package openai

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// RunStatus is the state of an assistant run. The run state machine is owned
// entirely by the remote service; this client only observes it.
type RunStatus string

const (
	RunStatusQueued     RunStatus = "queued"
	RunStatusInProgress RunStatus = "in_progress"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
	RunStatusCancelled  RunStatus = "cancelled"
)

// Pending reports whether the run has not yet reached a terminal state.
func (s RunStatus) Pending() bool {
	return s == RunStatusQueued || s == RunStatusInProgress
}

// Thread is a persistent conversation context held by the service.
type Thread struct {
	ID string `json:"id"`
}

// Run is one asynchronous assistant invocation against a thread.
type Run struct {
	ID       string    `json:"id"`
	ThreadID string    `json:"thread_id"`
	Status   RunStatus `json:"status"`
}

// Message is one turn within a thread.
type Message struct {
	ID        string  `json:"id"`
	Role      string  `json:"role"`
	CreatedAt int64   `json:"created_at"`
	Content   Content `json:"content"`
}

// ---- Request/Response bodies scoped to this package ----

type createMessageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type createRunRequest struct {
	AssistantID string `json:"assistant_id"`
}

type listMessagesResponse struct {
	Data []Message `json:"data"`
}
