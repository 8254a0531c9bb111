package upload

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/veranemoloko/resumatch/internal/domain"
	errpkg "github.com/veranemoloko/resumatch/internal/errors"
	"github.com/veranemoloko/resumatch/internal/metrics"
	"github.com/veranemoloko/resumatch/internal/validation"
	"github.com/veranemoloko/resumatch/internal/worker"
)

// DefaultDelay is the simulated processing time of an accepted upload.
const DefaultDelay = 1500 * time.Millisecond

// Validator decides whether a file may be uploaded.
type Validator interface {
	Validate(file *domain.SelectedFile) error
	MaxSize() int64
	Extensions() []string
}

// Notifier receives user-visible messages.
type Notifier interface {
	Notify(n domain.Notification)
}

// Sink completes an accepted upload once the processing delay has passed.
// It runs on the widget's loop and must return quickly.
type Sink interface {
	Complete(ctx context.Context, file *domain.SelectedFile) error
}

// SimulatedSink accepts every upload. No bytes are transferred anywhere.
type SimulatedSink struct{}

func (SimulatedSink) Complete(context.Context, *domain.SelectedFile) error { return nil }

// Config holds the collaborators of a Widget.
type Config struct {
	Delay      time.Duration
	Validator  Validator
	Sink       Sink
	Notifier   Notifier
	OnComplete func(file *domain.SelectedFile)
	Logger     *slog.Logger
}

// Widget is the upload status state machine:
// idle -> uploading -> success|error, and back to uploading on the next attempt.
// All methods must be called on the dispatcher's loop.
type Widget struct {
	dispatcher worker.Dispatcher
	cfg        Config

	ctx    context.Context
	cancel context.CancelFunc

	status  domain.UploadStatus
	file    *domain.SelectedFile
	pending *worker.DelayedTask
	history []domain.UploadStatus
	closed  bool
}

// NewWidget creates an idle widget.
func NewWidget(dispatcher worker.Dispatcher, cfg Config) *Widget {
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if cfg.Validator == nil {
		cfg.Validator = validation.NewDefaultUploadValidator()
	}
	if cfg.Sink == nil {
		cfg.Sink = SimulatedSink{}
	}
	if cfg.Notifier == nil {
		cfg.Notifier = discardNotifier{}
	}
	if cfg.OnComplete == nil {
		cfg.OnComplete = func(*domain.SelectedFile) {}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Widget{
		dispatcher: dispatcher,
		cfg:        cfg,
		ctx:        ctx,
		cancel:     cancel,
		status:     domain.UploadStatusIdle,
		history:    []domain.UploadStatus{domain.UploadStatusIdle},
	}
}

// Select handles a picked or dropped file. A nil file means nothing was
// dropped; it is reported but leaves the status unchanged.
func (w *Widget) Select(file *domain.SelectedFile) error {
	if w.closed {
		return errpkg.ErrSessionClosed
	}
	if w.status == domain.UploadStatusUploading {
		return errpkg.ErrUploadInProgress
	}

	if err := w.cfg.Validator.Validate(file); err != nil {
		reason := validation.Reason(err)
		metrics.UploadsRejected.WithLabelValues(string(reason)).Inc()
		w.cfg.Logger.Warn("upload rejected", "reason", reason, "error", err)

		if reason != validation.ReasonNoFileSelected {
			w.file = file
			w.setStatus(domain.UploadStatusError)
		}
		w.cfg.Notifier.Notify(w.rejectionNotice(reason))
		return err
	}

	metrics.UploadsAccepted.Inc()
	metrics.UploadSizeBytes.Observe(float64(file.SizeBytes))
	w.cfg.Logger.Info("upload accepted", "file_name", file.Name, "size_bytes", file.SizeBytes)

	w.file = file
	w.setStatus(domain.UploadStatusUploading)
	w.pending = worker.Schedule(w.dispatcher, w.cfg.Delay, func() {
		w.finish(file)
	})
	return nil
}

func (w *Widget) finish(file *domain.SelectedFile) {
	w.pending = nil

	if err := w.cfg.Sink.Complete(w.ctx, file); err != nil {
		metrics.UploadsFailed.Inc()
		err = fmt.Errorf("%w: %s: %w", errpkg.ErrUploadFailed, file.Name, err)
		w.cfg.Logger.Error("upload failed", "file_name", file.Name, "error", err)
		w.setStatus(domain.UploadStatusError)
		w.cfg.Notifier.Notify(notice(domain.SeverityDestructive, "Upload failed", "Please try again."))
		return
	}

	metrics.UploadsCompleted.Inc()
	w.cfg.Logger.Info("upload completed", "file_name", file.Name)
	w.setStatus(domain.UploadStatusSuccess)
	w.cfg.Notifier.Notify(notice(domain.SeverityInfo, "Resume uploaded successfully!", "Your resume is being analyzed..."))
	w.cfg.OnComplete(file)
}

func (w *Widget) setStatus(status domain.UploadStatus) {
	w.status = status
	w.history = append(w.history, status)
}

// Status returns the current status.
func (w *Widget) Status() domain.UploadStatus {
	return w.status
}

// History returns every status the widget has been in, oldest first.
func (w *Widget) History() []domain.UploadStatus {
	return append([]domain.UploadStatus(nil), w.history...)
}

// State returns the widget as the client renders it.
func (w *Widget) State() domain.UploadState {
	state := domain.UploadState{
		Status:     w.status,
		StatusText: w.status.Text(),
	}
	if w.file != nil {
		f := *w.file
		state.File = &f
	}
	return state
}

// Close cancels a pending upload. The widget ignores further selections.
func (w *Widget) Close() {
	if w.closed {
		return
	}
	w.closed = true
	if w.pending.Cancel() {
		w.cfg.Logger.Debug("pending upload cancelled on teardown")
	}
	w.pending = nil
	w.cancel()
}

func (w *Widget) rejectionNotice(reason validation.RejectReason) domain.Notification {
	switch reason {
	case validation.ReasonNoFileSelected:
		return notice(domain.SeverityDestructive, "No file selected", "Please choose a resume to upload")
	case validation.ReasonFileTooLarge:
		return notice(domain.SeverityDestructive, "File too large",
			fmt.Sprintf("Maximum file size is %s", humanSize(w.cfg.Validator.MaxSize())))
	default:
		return notice(domain.SeverityDestructive, "Invalid file type",
			"Please upload a "+listExtensions(w.cfg.Validator.Extensions())+" file")
	}
}

func notice(severity domain.Severity, title, description string) domain.Notification {
	return domain.Notification{
		Title:       title,
		Description: description,
		Severity:    severity,
		CreatedAt:   time.Now(),
	}
}

func humanSize(n int64) string {
	const mb = 1024 * 1024
	if n >= mb && n%mb == 0 {
		return fmt.Sprintf("%dMB", n/mb)
	}
	return fmt.Sprintf("%d bytes", n)
}

func listExtensions(exts []string) string {
	upper := make([]string, len(exts))
	for i, ext := range exts {
		upper[i] = strings.ToUpper(ext)
	}
	switch len(upper) {
	case 0:
		return "supported"
	case 1:
		return upper[0]
	default:
		return strings.Join(upper[:len(upper)-1], ", ") + " or " + upper[len(upper)-1]
	}
}

type discardNotifier struct{}

func (discardNotifier) Notify(domain.Notification) {}
