package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veranemoloko/resumatch/internal/domain"
	errpkg "github.com/veranemoloko/resumatch/internal/errors"
)

func TestUploadValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		file    *domain.SelectedFile
		wantErr error
	}{
		{
			name: "pdf within limit",
			file: domain.NewSelectedFile("resume.pdf", 2_000_000),
		},
		{
			name: "upper-case extension",
			file: domain.NewSelectedFile("RESUME.DOCX", 1_000),
		},
		{
			name: "exactly at limit",
			file: domain.NewSelectedFile("notes.txt", DefaultMaxFileSize),
		},
		{
			name: "every default extension",
			file: domain.NewSelectedFile("photo.jpeg", 10),
		},
		{
			name:    "executable",
			file:    domain.NewSelectedFile("resume.exe", 1_000),
			wantErr: errpkg.ErrUnsupportedType,
		},
		{
			name:    "no extension",
			file:    domain.NewSelectedFile("resume", 1_000),
			wantErr: errpkg.ErrUnsupportedType,
		},
		{
			name:    "one byte over limit",
			file:    domain.NewSelectedFile("resume.pdf", DefaultMaxFileSize+1),
			wantErr: errpkg.ErrFileTooLarge,
		},
		{
			name:    "large png",
			file:    domain.NewSelectedFile("scan.png", 11_000_000),
			wantErr: errpkg.ErrFileTooLarge,
		},
		{
			name:    "nil file",
			file:    nil,
			wantErr: errpkg.ErrNoFileSelected,
		},
	}

	v := NewDefaultUploadValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.file)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUploadValidator_AllDefaultExtensionsAccepted(t *testing.T) {
	v := NewDefaultUploadValidator()
	for _, ext := range DefaultExtensions {
		assert.NoError(t, v.Validate(domain.NewSelectedFile("cv."+ext, 100)), ext)
	}
}

func TestUploadValidator_TooLargeAndUnsupported(t *testing.T) {
	v := NewDefaultUploadValidator()

	err := v.Validate(domain.NewSelectedFile("setup.exe", DefaultMaxFileSize*2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errpkg.ErrFileTooLarge))
	assert.True(t, errors.Is(err, errpkg.ErrUnsupportedType))
	assert.Equal(t, ReasonFileTooLarge, Reason(err))
}

func TestUploadValidator_Idempotent(t *testing.T) {
	v := NewDefaultUploadValidator()
	files := []*domain.SelectedFile{
		domain.NewSelectedFile("resume.pdf", 2_000_000),
		domain.NewSelectedFile("resume.exe", 1_000),
		domain.NewSelectedFile("scan.png", 11_000_000),
	}

	for _, f := range files {
		first := Reason(v.Validate(f))
		second := Reason(v.Validate(f))
		assert.Equal(t, first, second, f.Name)
	}
}

func TestUploadValidator_ExtensionFromNameWhenUnset(t *testing.T) {
	v := NewDefaultUploadValidator()

	assert.NoError(t, v.Validate(&domain.SelectedFile{Name: "cv.Pdf", SizeBytes: 1}))
	assert.ErrorIs(t, v.Validate(&domain.SelectedFile{Name: "cv.zip", SizeBytes: 1}), errpkg.ErrUnsupportedType)
}

func TestNewUploadValidator_NormalizesExtensions(t *testing.T) {
	v := NewUploadValidator(100, []string{".PDF", " txt ", ""})

	assert.Equal(t, []string{"pdf", "txt"}, v.Extensions())
	assert.Equal(t, int64(100), v.MaxSize())
	assert.NoError(t, v.Validate(domain.NewSelectedFile("a.pdf", 100)))
	assert.ErrorIs(t, v.Validate(domain.NewSelectedFile("a.pdf", 101)), errpkg.ErrFileTooLarge)
	assert.ErrorIs(t, v.Validate(domain.NewSelectedFile("a.doc", 1)), errpkg.ErrUnsupportedType)
}

func TestReason(t *testing.T) {
	assert.Equal(t, ReasonNone, Reason(nil))
	assert.Equal(t, ReasonNoFileSelected, Reason(errpkg.ErrNoFileSelected))
	assert.Equal(t, ReasonUnsupportedType, Reason(errpkg.ErrUnsupportedType))
	assert.Equal(t, ReasonNone, Reason(errors.New("other")))
}
