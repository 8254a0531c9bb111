package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/veranemoloko/resumatch/internal/session"
)

// SessionRepo defines the interface for session storage operations.
type SessionRepo interface {
	CreateSession(ctx context.Context, s *session.Session) error
	GetSession(ctx context.Context, id uuid.UUID) (*session.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) (*session.Session, error)
	ListIdleSince(ctx context.Context, cutoff time.Time) ([]*session.Session, error)
	ListSessions(ctx context.Context) ([]*session.Session, error)
	Count() int
}
