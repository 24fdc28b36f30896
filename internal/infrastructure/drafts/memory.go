package drafts

import (
	"encoding/json"
	"sync"

	"github.com/Joud-BaniIssa/claims-go/internal/domain/claims"
)

// MemoryStore keeps the draft in memory. Used by tests and as a fallback
// when no data directory is available. Payloads round-trip through JSON so
// callers cannot alias the stored value.
type MemoryStore struct {
	mu      sync.Mutex
	payload []byte
}

// NewMemoryStore creates an empty in-memory draft store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save overwrites the draft.
func (s *MemoryStore) Save(draft *claims.ClaimDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = payload
	return nil
}

// Load reads the draft back.
func (s *MemoryStore) Load() (*claims.ClaimDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.payload == nil {
		return nil, ErrNotFound
	}
	var draft claims.ClaimDraft
	if err := json.Unmarshal(s.payload, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// Clear removes the draft.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = nil
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
