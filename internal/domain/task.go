package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work scoped to exactly one project.
type Task struct {
	ID          int          `json:"id"`
	ProjectID   int          `json:"project_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	AssignedTo  string       `json:"assigned_to,omitempty"`
	DueDate     string       `json:"due_date,omitempty"`
	Priority    TaskPriority `json:"priority,omitempty"`
	CreatedBy   string       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at,omitempty"`

	Project  *ProjectRef `json:"project,omitempty"`
	Assignee *User       `json:"assignee,omitempty"`
}

// TaskForm carries the fields a user may set when creating or updating a
// task. Pointer fields are omitted from the request body when nil.
type TaskForm struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	AssignedTo  *string       `json:"assigned_to,omitempty"`
	DueDate     *string       `json:"due_date,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
}

// StatusPatch returns a form that changes only the task status.
// This is the body behind every kanban column move.
func StatusPatch(status TaskStatus) TaskForm {
	return TaskForm{Status: &status}
}

// ValidateCreate checks the form for a task creation call.
// A title is required; everything else is optional.
func (f TaskForm) ValidateCreate() error {
	if f.Title == nil || *f.Title == "" {
		return fmt.Errorf("task title is required")
	}
	return f.validateShared()
}

// ValidateUpdate checks the form for a partial task update.
func (f TaskForm) ValidateUpdate() error {
	if f.Title != nil && *f.Title == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	return f.validateShared()
}

func (f TaskForm) validateShared() error {
	if f.Status != nil && !ValidTaskStatuses[*f.Status] {
		return fmt.Errorf("invalid task status %q (want todo, in_progress or done)", *f.Status)
	}
	if f.Priority != nil && *f.Priority != "" && !ValidTaskPriorities[*f.Priority] {
		return fmt.Errorf("invalid priority %q (want low, medium or high)", *f.Priority)
	}
	if f.AssignedTo != nil && *f.AssignedTo != "" {
		if _, err := uuid.Parse(*f.AssignedTo); err != nil {
			return fmt.Errorf("invalid assignee id %q: %w", *f.AssignedTo, err)
		}
	}
	if f.DueDate != nil && *f.DueDate != "" {
		if err := ValidateDate(*f.DueDate); err != nil {
			return fmt.Errorf("due date: %w", err)
		}
	}
	return nil
}
