package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"assistant-relay/internal/model"
	"assistant-relay/pkg/log"
)

// Store persists the conversation log as a single JSON document mapping
// user_id to an ordered list of exchanges. Every append loads the whole
// document and rewrites it via a temp file + rename, so readers never observe
// a partial write. Under concurrent processes last-writer-wins; this is a
// best-effort log, not an audit trail.
type Store struct {
	mu   sync.Mutex
	path string
	l    log.Logger
}

// New creates a conversation Store writing to the given file path.
func New(path string, l log.Logger) *Store {
	return &Store{path: path, l: l}
}

// Append adds one exchange under the user's key and rewrites the store.
func (s *Store) Append(ctx context.Context, userID string, exchange model.Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversations := s.load(ctx)
	conversations[userID] = append(conversations[userID], exchange)

	return s.save(conversations)
}

// Load returns the full persisted log keyed by user id.
func (s *Store) Load(ctx context.Context) (map[string][]model.Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx), nil
}

// load reads the store, treating a missing, empty, or corrupt file as empty.
// Corruption is logged and self-healed on the next save, never surfaced.
func (s *Store) load(ctx context.Context) map[string][]model.Exchange {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.l.Errorf(ctx, "conversation store: failed to read %s, resetting: %v", s.path, err)
		}
		return map[string][]model.Exchange{}
	}

	if len(raw) == 0 {
		return map[string][]model.Exchange{}
	}

	var conversations map[string][]model.Exchange
	if err := json.Unmarshal(raw, &conversations); err != nil {
		s.l.Errorf(ctx, "conversation store: corrupted JSON in %s, resetting: %v", s.path, err)
		return map[string][]model.Exchange{}
	}
	if conversations == nil {
		return map[string][]model.Exchange{}
	}
	return conversations
}

// save rewrites the whole store atomically from the reader's point of view.
func (s *Store) save(conversations map[string][]model.Exchange) error {
	raw, err := json.MarshalIndent(conversations, "", "    ")
	if err != nil {
		return fmt.Errorf("conversation store: failed to marshal log: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".conversations-*.json")
	if err != nil {
		return fmt.Errorf("conversation store: failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("conversation store: failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("conversation store: failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("conversation store: failed to replace %s: %w", s.path, err)
	}
	return nil
}
