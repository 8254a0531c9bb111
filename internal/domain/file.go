package domain

import (
	"path/filepath"
	"strings"
)

// SelectedFile describes a file picked or dropped for one upload attempt.
type SelectedFile struct {
	Name        string `json:"name"`
	SizeBytes   int64  `json:"size_bytes"`
	Extension   string `json:"extension"`
	ContentType string `json:"content_type,omitempty"`
}

// NewSelectedFile builds a SelectedFile and derives its extension from the name.
func NewSelectedFile(name string, size int64) *SelectedFile {
	return &SelectedFile{
		Name:      name,
		SizeBytes: size,
		Extension: ExtensionOf(name),
	}
}

// ExtensionOf returns the lower-cased extension of name without the dot.
func ExtensionOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
