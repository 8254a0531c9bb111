package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/veranemoloko/resumatch/internal/domain"
	errpkg "github.com/veranemoloko/resumatch/internal/errors"
)

// DefaultMaxFileSize is the largest accepted upload, 10 MiB.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// DefaultExtensions lists the accepted file extensions.
var DefaultExtensions = []string{"pdf", "doc", "docx", "jpg", "jpeg", "png", "txt"}

// RejectReason names why a file was refused.
type RejectReason string

const (
	ReasonNone            RejectReason = ""
	ReasonNoFileSelected  RejectReason = "no_file_selected"
	ReasonFileTooLarge    RejectReason = "file_too_large"
	ReasonUnsupportedType RejectReason = "unsupported_type"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("ext_in", validateExtIn)
}

// UploadValidator checks a selected file against the size and extension rules.
// It performs no I/O and is safe for concurrent use.
type UploadValidator struct {
	maxSize    int64
	extensions []string
	sizeTag    string
	extTag     string
}

// NewUploadValidator creates a validator. Extensions are matched case-insensitively
// and may be given with or without a leading dot.
func NewUploadValidator(maxSize int64, extensions []string) *UploadValidator {
	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			exts = append(exts, ext)
		}
	}

	return &UploadValidator{
		maxSize:    maxSize,
		extensions: exts,
		sizeTag:    fmt.Sprintf("lte=%d", maxSize),
		extTag:     "required,ext_in=" + strings.Join(exts, " "),
	}
}

// NewDefaultUploadValidator uses the 10 MiB limit and the default extensions.
func NewDefaultUploadValidator() *UploadValidator {
	return NewUploadValidator(DefaultMaxFileSize, DefaultExtensions)
}

// MaxSize returns the configured size limit in bytes.
func (v *UploadValidator) MaxSize() int64 {
	return v.maxSize
}

// Extensions returns the accepted extensions.
func (v *UploadValidator) Extensions() []string {
	return append([]string(nil), v.extensions...)
}

// Validate returns nil when the file is acceptable. A nil file yields
// ErrNoFileSelected. A file breaking both rules yields an error matching
// both ErrFileTooLarge and ErrUnsupportedType.
func (v *UploadValidator) Validate(file *domain.SelectedFile) error {
	if file == nil {
		return errpkg.ErrNoFileSelected
	}

	var errs []error

	if err := validate.Var(file.SizeBytes, v.sizeTag); err != nil {
		errs = append(errs, fmt.Errorf("%w: %d bytes exceeds limit of %d bytes", errpkg.ErrFileTooLarge, file.SizeBytes, v.maxSize))
	}

	ext := file.Extension
	if ext == "" {
		ext = domain.ExtensionOf(file.Name)
	}
	if err := validate.Var(ext, v.extTag); err != nil {
		errs = append(errs, fmt.Errorf("%w: %q", errpkg.ErrUnsupportedType, file.Name))
	}

	return errors.Join(errs...)
}

// Reason maps a validation error to its primary reason. Size wins over type.
func Reason(err error) RejectReason {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, errpkg.ErrNoFileSelected):
		return ReasonNoFileSelected
	case errors.Is(err, errpkg.ErrFileTooLarge):
		return ReasonFileTooLarge
	case errors.Is(err, errpkg.ErrUnsupportedType):
		return ReasonUnsupportedType
	default:
		return ReasonNone
	}
}

func validateExtIn(fl validator.FieldLevel) bool {
	ext := fl.Field().String()
	for _, allowed := range strings.Fields(fl.Param()) {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}
