package domain

import (
	"fmt"
	"time"
)

// FileRecord describes a file attached to a project. The record holds
// metadata only; the bytes live in external object storage under FilePath.
type FileRecord struct {
	ID         int       `json:"id"`
	ProjectID  int       `json:"project_id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	FileSize   int64     `json:"file_size"`
	FileType   string    `json:"file_type,omitempty"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`

	Uploader *User `json:"uploader,omitempty"`
}

// FileForm carries the metadata for registering an uploaded file.
type FileForm struct {
	Filename string `json:"filename"`
	FilePath string `json:"file_path"`
	FileSize int64  `json:"file_size"`
	FileType string `json:"file_type,omitempty"`
}

// Validate checks the form for a file registration call.
func (f FileForm) Validate() error {
	if f.Filename == "" {
		return fmt.Errorf("filename is required")
	}
	if f.FilePath == "" {
		return fmt.Errorf("file path is required")
	}
	if f.FileSize < 0 {
		return fmt.Errorf("file size cannot be negative")
	}
	return nil
}

// HumanSize renders the byte size as a short human-readable string.
func (f *FileRecord) HumanSize() string {
	const unit = 1024
	if f.FileSize < unit {
		return fmt.Sprintf("%d B", f.FileSize)
	}
	div, exp := int64(unit), 0
	for n := f.FileSize / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(f.FileSize)/float64(div), "KMGTPE"[exp])
}
