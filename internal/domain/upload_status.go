package domain

// UploadStatus represents the current state of the upload widget.
type UploadStatus string

const (
	UploadStatusIdle      UploadStatus = "idle"
	UploadStatusUploading UploadStatus = "uploading"
	UploadStatusSuccess   UploadStatus = "success"
	UploadStatusError     UploadStatus = "error"
)

// Text returns the headline the upload widget shows for the status.
func (s UploadStatus) Text() string {
	switch s {
	case UploadStatusUploading:
		return "Uploading your resume..."
	case UploadStatusSuccess:
		return "Resume uploaded successfully!"
	case UploadStatusError:
		return "Upload failed. Please try again."
	default:
		return "Drag & drop your resume here"
	}
}
