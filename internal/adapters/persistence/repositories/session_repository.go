package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"sync"

	"chapa-dashboard/internal/core/domain"
	"chapa-dashboard/internal/core/session"
)

// sessionRepository keeps sessions in memory and mirrors them to a JSON
// snapshot file, the server-side analog of the original client's single
// local-storage key. Absence of a session means logged out.
type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
	file     string
}

// NewSessionRepository creates a session repository. With a non-empty file
// path, existing sessions are restored from the snapshot and every change
// is written back; restored sessions count as already authenticated.
func NewSessionRepository(file string) (SessionRepository, error) {
	r := &sessionRepository{
		sessions: make(map[string]session.Session),
		file:     file,
	}

	if file != "" {
		if err := r.load(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Save stores or replaces a session
func (r *sessionRepository) Save(ctx context.Context, sess *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sess.ID] = *sess.Clone()
	return r.persist()
}

// GetByID gets a session by id
func (r *sessionRepository) GetByID(ctx context.Context, id string) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Delete removes a session. Deleting an absent session is a no-op, so
// logout stays idempotent.
func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return r.persist()
}

// load restores the snapshot file; a missing file is an empty store
func (r *sessionRepository) load() error {
	data, err := os.ReadFile(r.file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &r.sessions); err != nil {
		return err
	}

	log.Printf("✅ Restored %d session(s) from %s", len(r.sessions), r.file)
	return nil
}

// persist writes the snapshot; callers hold the lock
func (r *sessionRepository) persist() error {
	if r.file == "" {
		return nil
	}

	data, err := json.MarshalIndent(r.sessions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.file, data, 0o600)
}
