package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/veranemoloko/resumatch/internal/domain"
	errpkg "github.com/veranemoloko/resumatch/internal/errors"
	"github.com/veranemoloko/resumatch/internal/navigator"
	"github.com/veranemoloko/resumatch/internal/results"
	"github.com/veranemoloko/resumatch/internal/upload"
	"github.com/veranemoloko/resumatch/internal/worker"
)

// Config holds what every session is built from.
type Config struct {
	UploadDelay    time.Duration
	AnalysisDelay  time.Duration
	JobSearchDelay time.Duration
	Validator      upload.Validator
	Sink           upload.Sink
	Fixtures       *results.Fixtures
	QueueSize      int
	InboxSize      int
	Logger         *slog.Logger
}

// Session is one client's run through the screens. Every piece of state is
// owned by the session's event loop; the exported methods post to it.
type Session struct {
	id        uuid.UUID
	createdAt time.Time
	lastSeen  atomic.Int64
	loop      *worker.EventLoop
	logger    *slog.Logger

	updatedAt time.Time
	nav       *navigator.Navigator
	uploader  *upload.Widget
	analysis  *results.View[domain.AnalysisResult]
	jobs      *results.View[[]domain.JobListing]
	inbox     *Inbox
	closed    bool
}

// New creates a session on the landing step.
func New(id uuid.UUID, cfg Config) (*Session, error) {
	if cfg.Fixtures == nil {
		return nil, fmt.Errorf("session %s: fixtures are required", id)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}

	now := time.Now()
	logger := cfg.Logger.With("session_id", id)
	loop := worker.NewEventLoop(logger, cfg.QueueSize)

	s := &Session{
		id:        id,
		createdAt: now,
		updatedAt: now,
		loop:      loop,
		logger:    logger,
		inbox:     newInbox(cfg.InboxSize, logger),
	}
	s.lastSeen.Store(now.UnixNano())

	s.nav = navigator.New(s.onStepChange)
	s.uploader = upload.NewWidget(loop, upload.Config{
		Delay:      cfg.UploadDelay,
		Validator:  cfg.Validator,
		Sink:       cfg.Sink,
		Notifier:   s.inbox,
		OnComplete: s.onUploadComplete,
		Logger:     logger,
	})
	s.analysis = results.NewView(results.NewAnalysisProvider(cfg.Fixtures, cfg.AnalysisDelay), loop, logger)
	s.jobs = results.NewView(results.NewJobProvider(cfg.Fixtures, cfg.JobSearchDelay), loop, logger)

	return s, nil
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Touch records client activity.
func (s *Session) Touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// LastSeen returns the time of the last client activity.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) do(ctx context.Context, fn func() error) error {
	var err error
	loopErr := s.loop.Do(ctx, func() {
		if s.closed {
			err = errpkg.ErrSessionClosed
			return
		}
		err = fn()
	})
	if errors.Is(loopErr, errpkg.ErrLoopStopped) {
		return errpkg.ErrSessionClosed
	}
	if loopErr != nil {
		return loopErr
	}
	return err
}

// Start leaves the landing page for the upload screen.
func (s *Session) Start(ctx context.Context) error {
	return s.do(ctx, s.nav.Start)
}

// Upload hands a selected file to the upload widget. A nil file is a drop
// with no files in it.
func (s *Session) Upload(ctx context.Context, file *domain.SelectedFile) (domain.UploadState, error) {
	var state domain.UploadState
	err := s.do(ctx, func() error {
		if step := s.nav.Step(); step != domain.StepUpload {
			return fmt.Errorf("%w: upload is not possible on %s", errpkg.ErrInvalidTransition, step)
		}
		err := s.uploader.Select(file)
		state = s.uploader.State()
		s.updatedAt = time.Now()
		return err
	})
	return state, err
}

// Continue moves from the rendered analysis to the job matches.
func (s *Session) Continue(ctx context.Context) error {
	return s.do(ctx, func() error {
		if s.nav.Step() == domain.StepAnalysis && s.analysis.Loading() {
			return errpkg.ErrResultsPending
		}
		return s.nav.Continue()
	})
}

// Back returns from the job matches to the analysis.
func (s *Session) Back(ctx context.Context) error {
	return s.do(ctx, s.nav.Back)
}

// Snapshot describes the current screen.
func (s *Session) Snapshot(ctx context.Context) (domain.SessionResponse, error) {
	var resp domain.SessionResponse
	err := s.do(ctx, func() error {
		resp = domain.SessionResponse{
			SessionID: s.id,
			Step:      s.nav.Step(),
			FileName:  s.nav.FileName(),
			Upload:    s.uploader.State(),
			CreatedAt: s.createdAt,
			UpdatedAt: s.updatedAt,
		}
		return nil
	})
	return resp, err
}

// Analysis returns the analysis screen.
func (s *Session) Analysis(ctx context.Context) (domain.AnalysisResponse, error) {
	var resp domain.AnalysisResponse
	err := s.do(ctx, func() error {
		if !s.analysis.Mounted() {
			return fmt.Errorf("%w: analysis", errpkg.ErrViewNotActive)
		}
		resp.FileName = s.nav.FileName()
		resp.Loading = s.analysis.Loading()
		if result, ok := s.analysis.Result(); ok {
			resp.Result = &result
			resp.Summary = results.Summarize(result)
		}
		return nil
	})
	return resp, err
}

// Jobs returns the job matching screen.
func (s *Session) Jobs(ctx context.Context) (domain.JobsResponse, error) {
	var resp domain.JobsResponse
	err := s.do(ctx, func() error {
		if !s.jobs.Mounted() {
			return fmt.Errorf("%w: jobs", errpkg.ErrViewNotActive)
		}
		resp.Loading = s.jobs.Loading()
		if jobs, ok := s.jobs.Result(); ok {
			stats := domain.StatsFor(jobs)
			resp.Jobs = results.MatchJobs(jobs)
			resp.Stats = &stats
		}
		return nil
	})
	return resp, err
}

// Notifications drains pending notifications.
func (s *Session) Notifications(ctx context.Context) ([]domain.Notification, error) {
	var notes []domain.Notification
	err := s.do(ctx, func() error {
		notes = s.inbox.Drain()
		return nil
	})
	return notes, err
}

// Close cancels every pending timer and stops the loop.
func (s *Session) Close(ctx context.Context) error {
	err := s.do(ctx, func() error {
		s.uploader.Close()
		s.analysis.Unmount()
		s.jobs.Unmount()
		s.closed = true
		return nil
	})
	if err != nil && !errors.Is(err, errpkg.ErrSessionClosed) {
		return err
	}

	if err := s.loop.Stop(ctx); err != nil {
		return fmt.Errorf("stop session loop: %w", err)
	}
	s.logger.Debug("session closed")
	return nil
}

func (s *Session) onUploadComplete(file *domain.SelectedFile) {
	if err := s.nav.CompleteUpload(file.Name); err != nil {
		s.logger.Warn("upload completed off the upload step", "error", err)
	}
}

func (s *Session) onStepChange(from, to domain.Step) {
	s.updatedAt = time.Now()
	s.logger.Info("step changed", "from", from, "to", to)

	switch from {
	case domain.StepAnalysis:
		s.analysis.Unmount()
	case domain.StepJobs:
		s.jobs.Unmount()
	}

	switch to {
	case domain.StepAnalysis:
		s.analysis.Mount()
	case domain.StepJobs:
		s.jobs.Mount()
	}
}
