package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	errpkg "github.com/veranemoloko/resumatch/internal/errors"
	"github.com/veranemoloko/resumatch/internal/session"
)

// SessionStorage keeps sessions in memory. Nothing survives a restart.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session.Session
}

// NewSessionStorage creates an empty SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[uuid.UUID]*session.Session),
	}
}

// CreateSession adds a new session.
func (r *SessionStorage) CreateSession(ctx context.Context, s *session.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[s.ID()]; exists {
		return fmt.Errorf("session %s already exists", s.ID())
	}
	r.sessions[s.ID()] = s

	slog.Debug("session stored", "session_id", s.ID())
	return nil
}

// GetSession retrieves a session by ID.
func (r *SessionStorage) GetSession(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	s, exists := r.sessions[id]
	r.mu.RUnlock()

	if !exists {
		return nil, errpkg.ErrSessionNotFound
	}
	return s, nil
}

// DeleteSession removes a session and returns it so the caller can close it.
func (r *SessionStorage) DeleteSession(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, exists := r.sessions[id]
	if !exists {
		return nil, errpkg.ErrSessionNotFound
	}
	delete(r.sessions, id)

	slog.Debug("session removed", "session_id", id)
	return s, nil
}

// ListIdleSince returns sessions whose last activity is before cutoff.
func (r *SessionStorage) ListIdleSince(ctx context.Context, cutoff time.Time) ([]*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	var idle []*session.Session
	for _, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			idle = append(idle, s)
		}
	}
	r.mu.RUnlock()

	return idle, nil
}

// ListSessions returns every stored session.
func (r *SessionStorage) ListSessions(ctx context.Context) ([]*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	all := make([]*session.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		all = append(all, s)
	}
	r.mu.RUnlock()

	return all, nil
}

// Count returns the number of stored sessions.
func (r *SessionStorage) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
