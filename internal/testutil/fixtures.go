package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/teamboard/teamboard/internal/domain"
)

// TestUserID is the identity every fixture is created under.
var TestUserID = uuid.MustParse("7f1c5bb1-4f63-4a41-9db5-0d6f02f2b6a1").String()

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithDescription(d string) ProjectOption {
	return func(p *domain.Project) {
		p.Description = d
	}
}

func WithDates(start, end string) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = start
		p.EndDate = end
	}
}

// NewTestProject builds a project fixture. The zero ID marks it as not yet
// known to the fake server; seeding assigns one.
func NewTestProject(name string, opts ...ProjectOption) domain.Project {
	p := domain.Project{
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedBy: TestUserID,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPriority(p domain.TaskPriority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithAssignee(userID string) TaskOption {
	return func(t *domain.Task) {
		t.AssignedTo = userID
	}
}

func WithDueDate(d string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = d
	}
}

// NewTestTask builds a task fixture scoped to the given project.
func NewTestTask(projectID int, title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ProjectID: projectID,
		Title:     title,
		Status:    domain.TaskTodo,
		CreatedBy: TestUserID,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
