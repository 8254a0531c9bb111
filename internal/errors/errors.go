package errors

import "errors"

var (
	ErrNoFileSelected  = errors.New("no file selected")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")

	ErrUploadInProgress  = errors.New("upload already in progress")
	ErrUploadFailed      = errors.New("upload failed")
	ErrInvalidTransition = errors.New("invalid step transition")
	ErrResultsPending    = errors.New("results are still loading")
	ErrViewNotActive     = errors.New("view is not active")

	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
	ErrLoopStopped     = errors.New("event loop stopped")
)
