package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

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

// threadFactory hands out sequentially numbered threads.
type threadFactory struct {
	counter atomic.Int64
	err     error
}

func (f *threadFactory) CreateThread(ctx context.Context) (*openai.Thread, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &openai.Thread{ID: fmt.Sprintf("thread_%d", f.counter.Add(1))}, nil
}

func (f *threadFactory) CreateMessage(ctx context.Context, threadID, role, content string) (*openai.Message, error) {
	return nil, errors.New("not implemented")
}

func (f *threadFactory) CreateRun(ctx context.Context, threadID, assistantID string) (*openai.Run, error) {
	return nil, errors.New("not implemented")
}

func (f *threadFactory) GetRun(ctx context.Context, threadID, runID string) (*openai.Run, error) {
	return nil, errors.New("not implemented")
}

func (f *threadFactory) ListMessages(ctx context.Context, threadID string) ([]openai.Message, error) {
	return nil, errors.New("not implemented")
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Then Reuses Thread", func(t *testing.T) {
		factory := &threadFactory{}
		r := New(&mockLogger{}, factory)

		first, err := r.ResolveOrCreate(ctx, "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := r.ResolveOrCreate(ctx, "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Errorf("expected stable mapping, got %s then %s", first, second)
		}
		if factory.counter.Load() != 1 {
			t.Errorf("expected one thread created, got %d", factory.counter.Load())
		}
	})

	t.Run("Distinct Users Distinct Threads", func(t *testing.T) {
		r := New(&mockLogger{}, &threadFactory{})

		t1, _ := r.ResolveOrCreate(ctx, "u1")
		t2, _ := r.ResolveOrCreate(ctx, "u2")
		if t1 == t2 {
			t.Errorf("expected distinct threads, both got %s", t1)
		}
	})

	t.Run("Creation Error Propagates", func(t *testing.T) {
		factory := &threadFactory{err: errors.New("upstream down")}
		r := New(&mockLogger{}, factory)

		if _, err := r.ResolveOrCreate(ctx, "u1"); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("Concurrent First Contact Never Corrupts", func(t *testing.T) {
		factory := &threadFactory{}
		r := New(&mockLogger{}, factory)

		const goroutines = 16
		results := make([]string, goroutines)
		var wg sync.WaitGroup
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				threadID, err := r.ResolveOrCreate(ctx, "racer")
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				results[i] = threadID
			}(i)
		}
		wg.Wait()

		// The race may allocate more than one thread, but every caller must
		// hold a real thread id and the final mapping must be one of them.
		valid := map[string]bool{}
		for i := int64(1); i <= factory.counter.Load(); i++ {
			valid[fmt.Sprintf("thread_%d", i)] = true
		}
		for i, threadID := range results {
			if !valid[threadID] {
				t.Errorf("goroutine %d got invalid thread id %q", i, threadID)
			}
		}
		final, _ := r.ResolveOrCreate(ctx, "racer")
		if !valid[final] {
			t.Errorf("final mapping %q is not a created thread", final)
		}
	})

	t.Run("Instruction Message IDs", func(t *testing.T) {
		r := New(&mockLogger{}, &threadFactory{})

		if _, ok := r.InstructionMessageID("u1"); ok {
			t.Error("expected no instruction id recorded")
		}

		r.SetInstructionMessageID("u1", "msg_42")
		id, ok := r.InstructionMessageID("u1")
		if !ok || id != "msg_42" {
			t.Errorf("expected msg_42, got %q ok=%v", id, ok)
		}
	})
}
