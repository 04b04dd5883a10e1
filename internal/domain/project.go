package domain

import (
	"fmt"
	"time"
)

// Project is a top-level container for tasks, members and files.
// IDs are assigned by the server; the client never invents them.
type Project struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	StartDate   string        `json:"start_date,omitempty"`
	EndDate     string        `json:"end_date,omitempty"`
	CreatedBy   string        `json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at,omitempty"`

	// Denormalized snapshots the server may embed on single-project reads.
	Tasks   []Task          `json:"tasks,omitempty"`
	Members []ProjectMember `json:"members,omitempty"`
	Files   []FileRecord    `json:"files,omitempty"`
}

// ProjectRef is the minimal project shape embedded in task payloads.
type ProjectRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProjectForm carries the fields a user may set when creating or updating
// a project. Pointer fields are omitted from the request body when nil, so
// an update sends only the fields that changed.
type ProjectForm struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
	StartDate   *string        `json:"start_date,omitempty"`
	EndDate     *string        `json:"end_date,omitempty"`
}

// ValidateCreate checks the form for a project creation call.
// A name is required; everything else is optional.
func (f ProjectForm) ValidateCreate() error {
	if f.Name == nil || *f.Name == "" {
		return fmt.Errorf("project name is required")
	}
	return f.validateShared()
}

// ValidateUpdate checks the form for a partial project update.
func (f ProjectForm) ValidateUpdate() error {
	if f.Name != nil && *f.Name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	return f.validateShared()
}

func (f ProjectForm) validateShared() error {
	if f.Status != nil && !ValidProjectStatuses[*f.Status] {
		return fmt.Errorf("invalid project status %q (want active, completed or on-hold)", *f.Status)
	}
	if f.StartDate != nil && *f.StartDate != "" {
		if err := ValidateDate(*f.StartDate); err != nil {
			return fmt.Errorf("start date: %w", err)
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if err := ValidateDate(*f.EndDate); err != nil {
			return fmt.Errorf("end date: %w", err)
		}
	}
	return nil
}

// ValidateDate checks that s is a YYYY-MM-DD calendar date.
func ValidateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return nil
}
