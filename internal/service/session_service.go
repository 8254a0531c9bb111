package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	errpkg "github.com/veranemoloko/resumatch/internal/errors"
	"github.com/veranemoloko/resumatch/internal/metrics"
	repo "github.com/veranemoloko/resumatch/internal/repository"
	"github.com/veranemoloko/resumatch/internal/session"
)

const shutdownParallelism = 8

// SessionService creates, looks up and expires sessions.
type SessionService struct {
	repo       repo.SessionRepo
	sessionCfg session.Config
	ttl        time.Duration
	logger     *slog.Logger
}

// NewSessionService creates a SessionService. Sessions idle for longer than ttl
// are evicted by ExpireIdle.
func NewSessionService(r repo.SessionRepo, sessionCfg session.Config, ttl time.Duration, logger *slog.Logger) *SessionService {
	sessionCfg.Logger = logger
	return &SessionService{
		repo:       r,
		sessionCfg: sessionCfg,
		ttl:        ttl,
		logger:     logger,
	}
}

// CreateSession opens a new session on the landing step.
func (s *SessionService) CreateSession(ctx context.Context) (*session.Session, error) {
	sess, err := session.New(uuid.New(), s.sessionCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.repo.CreateSession(ctx, sess); err != nil {
		_ = sess.Close(context.Background())
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	metrics.SessionsCreated.Inc()
	metrics.ActiveSessions.Set(float64(s.repo.Count()))
	s.logger.Info("session created", "session_id", sess.ID())
	return sess, nil
}

// GetSession returns a session and records the access.
func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	sess, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Touch(time.Now())
	return sess, nil
}

// DeleteSession removes a session and tears it down.
func (s *SessionService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	sess, err := s.repo.DeleteSession(ctx, id)
	if err != nil {
		return err
	}
	metrics.ActiveSessions.Set(float64(s.repo.Count()))

	if err := sess.Close(ctx); err != nil {
		return fmt.Errorf("failed to close session %s: %w", id, err)
	}
	s.logger.Info("session deleted", "session_id", id)
	return nil
}

// ExpireIdle evicts sessions not seen since now minus the TTL.
// It returns how many sessions were evicted.
func (s *SessionService) ExpireIdle(ctx context.Context, now time.Time) (int, error) {
	idle, err := s.repo.ListIdleSince(ctx, now.Add(-s.ttl))
	if err != nil {
		return 0, fmt.Errorf("failed to list idle sessions: %w", err)
	}

	expired := 0
	for _, sess := range idle {
		if err := s.DeleteSession(ctx, sess.ID()); err != nil {
			if errors.Is(err, errpkg.ErrSessionNotFound) {
				continue
			}
			s.logger.Error("failed to expire session", "session_id", sess.ID(), "error", err)
			continue
		}
		expired++
		metrics.SessionsExpired.Inc()
	}

	if expired > 0 {
		s.logger.Info("idle sessions expired", "count", expired)
	}
	return expired, nil
}

// RunJanitor expires idle sessions every interval until ctx is done.
func (s *SessionService) RunJanitor(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("session janitor started", "interval", interval, "ttl", s.ttl)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session janitor stopped")
			return nil
		case now := <-ticker.C:
			if _, err := s.ExpireIdle(ctx, now); err != nil && ctx.Err() == nil {
				s.logger.Error("janitor run failed", "error", err)
			}
		}
	}
}

// Shutdown closes every session.
func (s *SessionService) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down session service")

	all, err := s.repo.ListSessions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(shutdownParallelism)

	for _, sess := range all {
		g.Go(func() error {
			err := s.DeleteSession(gctx, sess.ID())
			if errors.Is(err, errpkg.ErrSessionNotFound) {
				return nil
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Warn("session service shutdown incomplete", "error", err)
		return err
	}

	s.logger.Info("session service shutdown completed", "sessions_closed", len(all))
	return nil
}
