package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golasco/golasco/internal/domain"
)

// Fixed keys for the two persisted entries.
const (
	tokenKey    = "golasco_token"
	identityKey = "golasco_user"
)

// Store persists the session token and identity across process restarts.
//
// Both entries live in one file and are written and removed together, so a
// crash can never leave a token without its identity or vice versa. Anything
// malformed on disk is treated as absent, not as an error to recover from.
type Store struct {
	path string
}

// NewStore creates a store that persists under dir (typically ~/.golasco).
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "session.json")}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// persisted is the on-disk shape: the two fixed keys side by side.
type persisted struct {
	Token    string          `json:"golasco_token"`
	Identity json.RawMessage `json:"golasco_user"`
}

// Hydrate restores the persisted session, if any.
//
// Returns the restored session when both token and identity are present and
// well-formed, and an empty session otherwise. It never returns a
// half-populated session and never an error. Callers must complete hydration
// before any access guard decision is made.
func (s *Store) Hydrate() Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return Session{}
	}

	if p.Token == "" || len(p.Identity) == 0 {
		return Session{}
	}

	var identity domain.Identity
	if err := json.Unmarshal(p.Identity, &identity); err != nil {
		return Session{}
	}
	if !identity.Valid() {
		return Session{}
	}

	return Session{Token: p.Token, Identity: &identity}
}

// Persist writes token and identity together.
// Half sessions are rejected so the on-disk invariant can never be broken
// by a caller; the write itself goes through a temp file and rename.
func (s *Store) Persist(sess Session) error {
	if !sess.Active() {
		return fmt.Errorf("refusing to persist incomplete session")
	}

	identityJSON, err := json.Marshal(sess.Identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}

	data, err := json.MarshalIndent(persisted{
		Token:    sess.Token,
		Identity: identityJSON,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}

	return nil
}

// Clear removes both persisted entries atomically.
// Clearing an already-empty store is a success.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
