package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"assistant-relay/internal/model"
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

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Appends Preserve Order Across Reload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conversations.json")
		store := New(path, &mockLogger{})

		const n = 5
		for i := 0; i < n; i++ {
			exchange := model.Exchange{
				User:      fmt.Sprintf("question %d", i),
				Bot:       fmt.Sprintf("answer %d", i),
				Timestamp: float64(1700000000 + i),
			}
			if err := store.Append(ctx, "u1", exchange); err != nil {
				t.Fatalf("append %d: %v", i, err)
			}
		}

		// Fresh store on the same file simulates a process restart.
		reloaded := New(path, &mockLogger{})
		log, err := reloaded.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entries := log["u1"]
		if len(entries) != n {
			t.Fatalf("expected %d entries, got %d", n, len(entries))
		}
		for i, e := range entries {
			if e.User != fmt.Sprintf("question %d", i) || e.Bot != fmt.Sprintf("answer %d", i) {
				t.Errorf("entry %d out of order or mangled: %+v", i, e)
			}
			if e.Timestamp != float64(1700000000+i) {
				t.Errorf("entry %d timestamp not preserved: %v", i, e.Timestamp)
			}
		}
	})

	t.Run("Separate Users Separate Keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conversations.json")
		store := New(path, &mockLogger{})

		store.Append(ctx, "u1", model.Exchange{User: "a", Bot: "b", Timestamp: 1})
		store.Append(ctx, "u2", model.Exchange{User: "c", Bot: "d", Timestamp: 2})

		log, _ := store.Load(ctx)
		if len(log["u1"]) != 1 || len(log["u2"]) != 1 {
			t.Errorf("expected one entry per user, got %v", log)
		}
	})

	t.Run("Missing File Self-Heals", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conversations.json")
		store := New(path, &mockLogger{})

		if err := store.Append(ctx, "u1", model.Exchange{User: "hello", Bot: "hi", Timestamp: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		log, _ := store.Load(ctx)
		if len(log["u1"]) != 1 {
			t.Errorf("expected exactly one entry, got %d", len(log["u1"]))
		}
	})

	t.Run("Corrupt File Self-Heals", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conversations.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}

		store := New(path, &mockLogger{})
		if err := store.Append(ctx, "u1", model.Exchange{User: "hello", Bot: "hi", Timestamp: 1}); err != nil {
			t.Fatalf("corruption must not propagate: %v", err)
		}

		log, _ := store.Load(ctx)
		if len(log) != 1 || len(log["u1"]) != 1 {
			t.Errorf("expected store reset to the one new entry, got %v", log)
		}
	})

	t.Run("Empty File Treated As Empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conversations.json")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}

		store := New(path, &mockLogger{})
		log, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(log) != 0 {
			t.Errorf("expected empty log, got %v", log)
		}
	})
}
