// Package store holds the client-side cache of the user's projects and the
// active project's tasks. It is the sole writer of its collections; views
// read snapshots and route every change through the mutation methods.
//
// Consistency follows refetch-after-write: every mutation is followed by a
// canonical re-read from the server instead of a local patch, so client and
// server state cannot diverge at the cost of an extra round trip per write.
package store

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/teamboard/teamboard/internal/domain"
)

// API is the slice of the HTTP client the cache drives.
type API interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id int) (*domain.Project, error)
	CreateProject(ctx context.Context, form domain.ProjectForm) (*domain.Project, error)
	UpdateProject(ctx context.Context, id int, form domain.ProjectForm) (*domain.Project, error)
	DeleteProject(ctx context.Context, id int) error

	ListTasks(ctx context.Context, projectID int) ([]domain.Task, error)
	CreateTask(ctx context.Context, projectID int, form domain.TaskForm) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int, form domain.TaskForm) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// Store is the project/task cache. Construct one per session with New and
// tear it down (Reset) on sign-out; there is no package-level instance.
type Store struct {
	mu sync.Mutex

	api  API
	errw io.Writer // destination for swallowed read errors

	projects []domain.Project
	current  *domain.Project
	tasks    []domain.Task
	loading  bool
	search   string

	// Fetch generations. A response that resolves after a newer fetch of
	// the same collection started is stale and gets dropped instead of
	// overwriting newer state.
	projectsGen uint64
	currentGen  uint64
	tasksGen    uint64

	subscribers []func()
}

// New creates an empty Store backed by the given API client.
// Swallowed read errors are logged to errw; nil discards them.
func New(apiClient API, errw io.Writer) *Store {
	if errw == nil {
		errw = io.Discard
	}
	return &Store{api: apiClient, errw: errw}
}

// ── read accessors ───────────────────────────────────────────────────────────

// Projects returns the cached project list in the server's return order.
func (s *Store) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects
}

// CurrentProject returns the active project, or nil.
func (s *Store) CurrentProject() *domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Tasks returns the cached tasks of the current project.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks
}

// Loading reports whether a fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// SearchQuery returns the current client-side filter text.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// SetSearchQuery updates the client-side filter. It never triggers a
// server call.
func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	s.search = q
	s.mu.Unlock()
	s.notify()
}

// FilteredProjects returns the cached projects whose name or description
// matches the search query, case-insensitively. An empty query matches all.
func (s *Store) FilteredProjects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(s.search))
	if q == "" {
		return s.projects
	}
	var out []domain.Project
	for _, p := range s.projects {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// Stats aggregates the current project's cached tasks.
func (s *Store) Stats() domain.TaskStats {
	return domain.ComputeStats(s.Tasks())
}

// ── fetch operations ─────────────────────────────────────────────────────────
//
// Reads swallow errors: a failed background refresh degrades to an empty
// collection and is logged, never surfaced to the calling view. Writes
// below propagate their errors. The asymmetry favors availability of the
// list views over failure visibility for passive refreshes.

// FetchProjects replaces the entire project collection with the server's
// current list. Full replace, no merge.
func (s *Store) FetchProjects(ctx context.Context) {
	s.mu.Lock()
	s.projectsGen++
	gen := s.projectsGen
	s.loading = true
	s.mu.Unlock()
	s.notify()

	projects, err := s.api.ListProjects(ctx)
	if err != nil {
		s.logReadError("fetching projects", err)
		projects = nil
	}

	s.mu.Lock()
	if gen == s.projectsGen {
		s.projects = projects
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

// FetchProject fetches one project and sets it as the current project,
// replacing any prior one unconditionally. Switching to a different
// project invalidates the cached task list; callers follow up with
// FetchTasks for the new project.
func (s *Store) FetchProject(ctx context.Context, id int) {
	s.mu.Lock()
	s.currentGen++
	gen := s.currentGen
	s.loading = true
	s.mu.Unlock()
	s.notify()

	project, err := s.api.GetProject(ctx, id)
	if err != nil {
		s.logReadError(fmt.Sprintf("fetching project %d", id), err)
		project = nil
	}

	s.mu.Lock()
	if gen == s.currentGen {
		switching := s.current != nil && (project == nil || s.current.ID != project.ID)
		s.current = project
		if switching {
			// Never leave a previous project's tasks visible under the
			// new current project.
			s.tasks = nil
			s.tasksGen++
		}
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

// FetchTasks replaces the task collection with the server's current task
// list for the given project. Full replace, no merge.
func (s *Store) FetchTasks(ctx context.Context, projectID int) {
	s.mu.Lock()
	s.tasksGen++
	gen := s.tasksGen
	s.loading = true
	s.mu.Unlock()
	s.notify()

	tasks, err := s.api.ListTasks(ctx, projectID)
	if err != nil {
		s.logReadError(fmt.Sprintf("fetching tasks for project %d", projectID), err)
		tasks = nil
	}

	s.mu.Lock()
	if gen == s.tasksGen {
		s.tasks = tasks
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

// ── project mutations ────────────────────────────────────────────────────────

// CreateProject posts the new project, refetches the project list and
// returns the server-assigned record so the caller can navigate to it.
func (s *Store) CreateProject(ctx context.Context, form domain.ProjectForm) (*domain.Project, error) {
	if err := form.ValidateCreate(); err != nil {
		return nil, err
	}
	created, err := s.api.CreateProject(ctx, form)
	if err != nil {
		return nil, err
	}
	s.FetchProjects(ctx)
	return created, nil
}

// UpdateProject applies the mutation, refetches the project list, and
// refetches the current project when it was the one updated so the cache
// never holds a stale current project.
func (s *Store) UpdateProject(ctx context.Context, id int, form domain.ProjectForm) error {
	if err := form.ValidateUpdate(); err != nil {
		return err
	}
	if _, err := s.api.UpdateProject(ctx, id, form); err != nil {
		return err
	}
	s.FetchProjects(ctx)

	if cur := s.CurrentProject(); cur != nil && cur.ID == id {
		s.FetchProject(ctx, id)
	}
	return nil
}

// DeleteProject applies the mutation and refetches the project list.
// Deleting the current project clears it and its task list; deleting any
// other project leaves them untouched.
func (s *Store) DeleteProject(ctx context.Context, id int) error {
	if err := s.api.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.FetchProjects(ctx)

	s.mu.Lock()
	cleared := false
	if s.current != nil && s.current.ID == id {
		s.current = nil
		s.tasks = nil
		s.currentGen++
		s.tasksGen++
		cleared = true
	}
	s.mu.Unlock()
	if cleared {
		s.notify()
	}
	return nil
}

// ── task mutations ───────────────────────────────────────────────────────────

// CreateTask posts the new task and refetches the owning project's tasks
// when that project is the active one.
func (s *Store) CreateTask(ctx context.Context, projectID int, form domain.TaskForm) (*domain.Task, error) {
	if err := form.ValidateCreate(); err != nil {
		return nil, err
	}
	created, err := s.api.CreateTask(ctx, projectID, form)
	if err != nil {
		return nil, err
	}
	s.refetchIfCurrent(ctx, projectID)
	return created, nil
}

// UpdateTask applies a partial update. Tasks are refetched only when the
// owning project is the active one; a mutation against a background
// project leaves the cached list untouched.
func (s *Store) UpdateTask(ctx context.Context, id int, form domain.TaskForm) error {
	if err := form.ValidateUpdate(); err != nil {
		return err
	}
	updated, err := s.api.UpdateTask(ctx, id, form)
	if err != nil {
		return err
	}
	s.refetchIfCurrent(ctx, updated.ProjectID)
	return nil
}

// DeleteTask removes the task and refetches the current project's tasks.
func (s *Store) DeleteTask(ctx context.Context, id int) error {
	if err := s.api.DeleteTask(ctx, id); err != nil {
		return err
	}
	if cur := s.CurrentProject(); cur != nil {
		s.FetchTasks(ctx, cur.ID)
	}
	return nil
}

// MoveTask is the kanban status transition: dropping a task onto its own
// column is a no-op with no network call; any other target triggers a
// status-only update. The caller restores the visual position on failure.
func (s *Store) MoveTask(ctx context.Context, id int, target domain.TaskStatus) error {
	if !domain.ValidTaskStatuses[target] {
		return fmt.Errorf("invalid task status %q", target)
	}

	s.mu.Lock()
	var from *domain.Task
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			from = &s.tasks[i]
			break
		}
	}
	s.mu.Unlock()

	if from == nil {
		return fmt.Errorf("task %d is not in the current board", id)
	}
	if from.Status == target {
		return nil
	}
	return s.UpdateTask(ctx, id, domain.StatusPatch(target))
}

func (s *Store) refetchIfCurrent(ctx context.Context, projectID int) {
	if cur := s.CurrentProject(); cur != nil && cur.ID == projectID {
		s.FetchTasks(ctx, projectID)
	}
}

// ── lifecycle ────────────────────────────────────────────────────────────────

// Subscribe registers a listener invoked after every state change.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Reset drops all cached state. Wired to session sign-out so no data
// outlives the session it was fetched under.
func (s *Store) Reset() {
	s.mu.Lock()
	s.projects = nil
	s.current = nil
	s.tasks = nil
	s.search = ""
	s.loading = false
	s.projectsGen++
	s.currentGen++
	s.tasksGen++
	s.mu.Unlock()
	s.notify()
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := append([]func(){}, s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) logReadError(what string, err error) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(s.errw, "[%s] store %s: %v\n", ts, what, err)
}
