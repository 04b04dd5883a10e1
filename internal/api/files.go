package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teamboard/teamboard/internal/domain"
)

// ListFiles returns a project's file records.
func (c *Client) ListFiles(ctx context.Context, projectID int) ([]domain.FileRecord, error) {
	var files []domain.FileRecord
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/files", projectID), nil, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// RegisterFile records an uploaded file's metadata against a project.
// The bytes themselves are stored separately under form.FilePath.
func (c *Client) RegisterFile(ctx context.Context, projectID int, form domain.FileForm) (*domain.FileRecord, error) {
	var f domain.FileRecord
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/files", projectID), form, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteFile removes a file record (and its stored object, server-side).
func (c *Client) DeleteFile(ctx context.Context, fileID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/files/%d", fileID), nil, nil)
}
