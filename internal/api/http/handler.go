package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/veranemoloko/resumatch/internal/domain"
	errpkg "github.com/veranemoloko/resumatch/internal/errors"
	"github.com/veranemoloko/resumatch/internal/session"
	"github.com/veranemoloko/resumatch/internal/validation"
)

const (
	// multipartOverhead is the allowance for multipart framing on top of the file limit.
	multipartOverhead = 1 << 20
	multipartMemory   = 1 << 20
	uploadField       = "file"
)

// SessionServiceI defines the session operations the handlers need.
type SessionServiceI interface {
	CreateSession(ctx context.Context) (*session.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*session.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

// SessionHandler handles HTTP requests for sessions.
type SessionHandler struct {
	sessions  SessionServiceI
	validator *validator.Validate
	logger    *slog.Logger
	maxUpload int64
}

// NewSessionHandler creates a SessionHandler. maxUpload bounds the request
// body of an upload; larger bodies are reported as too large.
func NewSessionHandler(sessions SessionServiceI, maxUpload int64, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		validator: validator.New(),
		logger:    logger,
		maxUpload: maxUpload,
	}
}

// CreateSession handles POST /sessions.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.CreateSession(r.Context())
	if err != nil {
		h.logger.Error("failed to create session", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, domain.CreateSessionResponse{
		SessionID: sess.ID(),
		Step:      domain.StepLanding,
	})
}

// GetSession handles GET /sessions/{sessionID}.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.writeSnapshot(w, r, sess)
}

// DeleteSession handles DELETE /sessions/{sessionID}.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.sessions.DeleteSession(r.Context(), id); err != nil {
		h.writeSessionError(w, err, "delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Start handles POST /sessions/{sessionID}/start.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "start", (*session.Session).Start)
}

// Continue handles POST /sessions/{sessionID}/continue.
func (h *SessionHandler) Continue(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "continue", (*session.Session).Continue)
}

// Back handles POST /sessions/{sessionID}/back.
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "back", (*session.Session).Back)
}

// Upload handles POST /sessions/{sessionID}/upload. The file is read from the
// multipart field "file"; a request without that field is a drop with no files.
func (h *SessionHandler) Upload(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	file, err := h.readUpload(w, r)
	if err != nil {
		h.logger.Warn("malformed upload", "session_id", sess.ID(), "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	state, err := sess.Upload(r.Context(), file)
	if err != nil {
		if reason := validation.Reason(err); reason != validation.ReasonNone {
			h.logger.Warn("upload rejected", "session_id", sess.ID(), "reason", reason)
			writeJSON(w, http.StatusUnprocessableEntity, domain.UploadRejectedResponse{
				Error:  err.Error(),
				Reason: string(reason),
				Upload: state,
			})
			return
		}
		h.writeSessionError(w, err, "upload")
		return
	}

	writeJSON(w, http.StatusAccepted, state)
}

// Analysis handles GET /sessions/{sessionID}/analysis.
func (h *SessionHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	resp, err := sess.Analysis(r.Context())
	if err != nil {
		h.writeSessionError(w, err, "analysis")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Jobs handles GET /sessions/{sessionID}/jobs.
func (h *SessionHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	resp, err := sess.Jobs(r.Context())
	if err != nil {
		h.writeSessionError(w, err, "jobs")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Notifications handles GET /sessions/{sessionID}/notifications.
func (h *SessionHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	notes, err := sess.Notifications(r.Context())
	if err != nil {
		h.writeSessionError(w, err, "notifications")
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *SessionHandler) transition(w http.ResponseWriter, r *http.Request, op string, fn func(*session.Session, context.Context) error) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := fn(sess, r.Context()); err != nil {
		h.writeSessionError(w, err, op)
		return
	}
	h.writeSnapshot(w, r, sess)
}

func (h *SessionHandler) writeSnapshot(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	snap, err := sess.Snapshot(r.Context())
	if err != nil {
		h.writeSessionError(w, err, "snapshot")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *SessionHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "sessionID")
	if err := h.validator.Var(raw, "required,uuid"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid session ID")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return nil, false
	}

	sess, err := h.sessions.GetSession(r.Context(), id)
	if err != nil {
		h.writeSessionError(w, err, "get session")
		return nil, false
	}
	return sess, true
}

// readUpload turns the multipart body into the file the user selected.
// It returns a nil file when no file part was sent. Bodies over the limit are
// reported with a size above the limit so the validator refuses them.
func (h *SessionHandler) readUpload(w http.ResponseWriter, r *http.Request) (*domain.SelectedFile, error) {
	limit := h.maxUpload + multipartOverhead
	if r.ContentLength > limit {
		return h.oversized(), nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return h.oversized(), nil
		}
		return nil, err
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	f, header, err := r.FormFile(uploadField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file := domain.NewSelectedFile(header.Filename, header.Size)
	if mtype, err := mimetype.DetectReader(f); err == nil {
		file.ContentType = mtype.String()
	}
	return file, nil
}

func (h *SessionHandler) oversized() *domain.SelectedFile {
	return &domain.SelectedFile{SizeBytes: h.maxUpload + 1}
}

func (h *SessionHandler) writeSessionError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, errpkg.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, errpkg.ErrSessionClosed):
		writeError(w, http.StatusGone, "session closed")
	case errors.Is(err, errpkg.ErrInvalidTransition),
		errors.Is(err, errpkg.ErrUploadInProgress),
		errors.Is(err, errpkg.ErrResultsPending),
		errors.Is(err, errpkg.ErrViewNotActive):
		h.logger.Warn("request conflicts with session state", "op", op, "error", err)
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("request abandoned", "op", op, "error", err)
		writeError(w, http.StatusServiceUnavailable, "request timed out")
	default:
		h.logger.Error("request failed", "op", op, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}
