package drafts

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Joud-BaniIssa/claims-go/internal/domain/claims"
)

// SQLiteStore persists the draft in a local SQLite database, the durable
// counterpart of the browser client's keyed local storage.
type SQLiteStore struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// NewSQLiteStore opens (or creates) the draft database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".data", "drafts.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("drafts: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("drafts: open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS drafts (
			key TEXT PRIMARY KEY,
			payload BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("drafts: create schema: %w", err)
	}
	return nil
}

// Save overwrites the draft record.
func (s *SQLiteStore) Save(draft *claims.ClaimDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("drafts: serialize draft: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO drafts (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, DraftKey, payload, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("drafts: write draft: %w", err)
	}
	return nil
}

// Load reads the draft record back.
func (s *SQLiteStore) Load() (*claims.ClaimDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM drafts WHERE key = ?`, DraftKey).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("drafts: read draft: %w", err)
	}

	var draft claims.ClaimDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("drafts: parse draft: %w", err)
	}
	return &draft, nil
}

// Clear removes the draft record.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec(`DELETE FROM drafts WHERE key = ?`, DraftKey); err != nil {
		return fmt.Errorf("drafts: clear draft: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
