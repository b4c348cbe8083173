package usecase

import (
	"context"
	"sync"

	"assistant-relay/internal/model"
	"assistant-relay/pkg/openai"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock assistant client for testing. Each func field overrides one operation;
// unset fields use a happy-path default. Calls counts every remote call made.
type mockAssistant struct {
	mu    sync.Mutex
	calls struct {
		createThread  int
		createMessage int
		createRun     int
		getRun        int
		listMessages  int
	}

	createThreadFunc  func() (*openai.Thread, error)
	createMessageFunc func(threadID, role, content string) (*openai.Message, error)
	createRunFunc     func(threadID, assistantID string) (*openai.Run, error)
	getRunFunc        func(threadID, runID string) (*openai.Run, error)
	listMessagesFunc  func(threadID string) ([]openai.Message, error)
}

func (m *mockAssistant) totalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.createThread + m.calls.createMessage + m.calls.createRun +
		m.calls.getRun + m.calls.listMessages
}

func (m *mockAssistant) CreateThread(ctx context.Context) (*openai.Thread, error) {
	m.mu.Lock()
	m.calls.createThread++
	m.mu.Unlock()
	if m.createThreadFunc != nil {
		return m.createThreadFunc()
	}
	return &openai.Thread{ID: "thread_1"}, nil
}

func (m *mockAssistant) CreateMessage(ctx context.Context, threadID, role, content string) (*openai.Message, error) {
	m.mu.Lock()
	m.calls.createMessage++
	m.mu.Unlock()
	if m.createMessageFunc != nil {
		return m.createMessageFunc(threadID, role, content)
	}
	return &openai.Message{ID: "msg_user", Role: role, CreatedAt: 100}, nil
}

func (m *mockAssistant) CreateRun(ctx context.Context, threadID, assistantID string) (*openai.Run, error) {
	m.mu.Lock()
	m.calls.createRun++
	m.mu.Unlock()
	if m.createRunFunc != nil {
		return m.createRunFunc(threadID, assistantID)
	}
	return &openai.Run{ID: "run_1", ThreadID: threadID, Status: openai.RunStatusCompleted}, nil
}

func (m *mockAssistant) GetRun(ctx context.Context, threadID, runID string) (*openai.Run, error) {
	m.mu.Lock()
	m.calls.getRun++
	m.mu.Unlock()
	if m.getRunFunc != nil {
		return m.getRunFunc(threadID, runID)
	}
	return &openai.Run{ID: runID, ThreadID: threadID, Status: openai.RunStatusCompleted}, nil
}

func (m *mockAssistant) ListMessages(ctx context.Context, threadID string) ([]openai.Message, error) {
	m.mu.Lock()
	m.calls.listMessages++
	m.mu.Unlock()
	if m.listMessagesFunc != nil {
		return m.listMessagesFunc(threadID)
	}
	return []openai.Message{assistantMessage("msg_bot", 200, "Hi there")}, nil
}

// assistantMessage builds an assistant message with a structured text part.
func assistantMessage(id string, createdAt int64, text string) openai.Message {
	return openai.Message{
		ID:        id,
		Role:      openai.RoleAssistant,
		CreatedAt: createdAt,
		Content: openai.Content{
			Kind:  openai.ContentParts,
			Parts: []openai.ContentPart{{Type: "text", Text: text}},
		},
	}
}

// Mock session registry for testing.
type mockRegistry struct {
	mu           sync.Mutex
	threads      map[string]string
	instructions map[string]string
	resolveErr   error
}

func newMockRegistry() *mockRegistry {
	return &mockRegistry{
		threads:      map[string]string{},
		instructions: map[string]string{},
	}
}

func (r *mockRegistry) ResolveOrCreate(ctx context.Context, userID string) (string, error) {
	if r.resolveErr != nil {
		return "", r.resolveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if threadID, ok := r.threads[userID]; ok {
		return threadID, nil
	}
	threadID := "thread_" + userID
	r.threads[userID] = threadID
	return threadID, nil
}

func (r *mockRegistry) InstructionMessageID(userID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.instructions[userID]
	return id, ok
}

// In-memory conversation store for testing.
type memStore struct {
	mu        sync.Mutex
	log       map[string][]model.Exchange
	appendErr error
}

func newMemStore() *memStore {
	return &memStore{log: map[string][]model.Exchange{}}
}

func (s *memStore) Append(ctx context.Context, userID string, exchange model.Exchange) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log[userID] = append(s.log[userID], exchange)
	return nil
}

func (s *memStore) Load(ctx context.Context) (map[string][]model.Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log, nil
}
