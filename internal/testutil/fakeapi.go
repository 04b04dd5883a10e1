package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/teamboard/teamboard/internal/domain"
)

// FakeAPI is an in-memory stand-in for the project-management server,
// implementing the project and task routes the cache drives. It records
// every request so tests can assert on call counts (e.g. the no-op
// kanban move must not reach the network).
type FakeAPI struct {
	t   *testing.T
	srv *httptest.Server

	mu            sync.Mutex
	nextProjectID int
	nextTaskID    int
	projects      map[int]domain.Project
	tasks         map[int]domain.Task
	requests      []string
	failures      map[string]failure
}

type failure struct {
	status  int
	message string
}

// NewFakeAPI starts the fake server. It is torn down with the test.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{
		t:             t,
		nextProjectID: 1,
		nextTaskID:    1,
		projects:      map[int]domain.Project{},
		tasks:         map[int]domain.Task{},
		failures:      map[string]failure{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /projects", f.listProjects)
	mux.HandleFunc("POST /projects", f.createProject)
	mux.HandleFunc("GET /projects/{id}", f.getProject)
	mux.HandleFunc("PUT /projects/{id}", f.updateProject)
	mux.HandleFunc("DELETE /projects/{id}", f.deleteProject)
	mux.HandleFunc("GET /projects/{id}/tasks", f.listTasks)
	mux.HandleFunc("POST /projects/{id}/tasks", f.createTask)
	mux.HandleFunc("PUT /tasks/{id}", f.updateTask)
	mux.HandleFunc("DELETE /tasks/{id}", f.deleteTask)
	mux.HandleFunc("GET /my-tasks", f.myTasks)

	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if fail, ok := f.failureFor(r); ok {
			writeError(w, fail.status, fail.message)
			return
		}
		if r.Header.Get("Authorization") == "" || r.Header.Get("Authorization") == "Bearer " {
			writeError(w, http.StatusUnauthorized, "Missing authorization token")
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// URL returns the fake server's base URL.
func (f *FakeAPI) URL() string { return f.srv.URL }

// ── seeding and introspection ────────────────────────────────────────────────

// SeedProject inserts a project, assigning the next id. Returns the id.
func (f *FakeAPI) SeedProject(p domain.Project) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == 0 {
		p.ID = f.nextProjectID
	}
	if p.ID >= f.nextProjectID {
		f.nextProjectID = p.ID + 1
	}
	f.projects[p.ID] = p
	return p.ID
}

// SeedTask inserts a task, assigning the next id. Returns the id.
func (f *FakeAPI) SeedTask(t domain.Task) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t.ID == 0 {
		t.ID = f.nextTaskID
	}
	if t.ID >= f.nextTaskID {
		f.nextTaskID = t.ID + 1
	}
	f.tasks[t.ID] = t
	return t.ID
}

// Requests returns the "METHOD /path" log of everything received.
func (f *FakeAPI) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.requests...)
}

// CountRequests returns how many received requests match exactly.
func (f *FakeAPI) CountRequests(methodAndPath string) int {
	n := 0
	for _, r := range f.Requests() {
		if r == methodAndPath {
			n++
		}
	}
	return n
}

// FailWith makes the given "METHOD /path" respond with an error until
// cleared by ClearFailure.
func (f *FakeAPI) FailWith(methodAndPath string, status int, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[methodAndPath] = failure{status: status, message: message}
}

// ClearFailure removes an injected failure.
func (f *FakeAPI) ClearFailure(methodAndPath string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.failures, methodAndPath)
}

// ProjectCount returns how many projects the server currently holds.
func (f *FakeAPI) ProjectCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.projects)
}

func (f *FakeAPI) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
}

func (f *FakeAPI) failureFor(r *http.Request) (failure, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fail, ok := f.failures[r.Method+" "+r.URL.Path]
	return fail, ok
}

// ── handlers ─────────────────────────────────────────────────────────────────

func (f *FakeAPI) listProjects(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	out := make([]domain.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	f.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) createProject(w http.ResponseWriter, r *http.Request) {
	var form domain.ProjectForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if form.Name == nil || *form.Name == "" {
		writeError(w, http.StatusBadRequest, "Project name is required")
		return
	}

	f.mu.Lock()
	p := domain.Project{
		ID:        f.nextProjectID,
		Name:      *form.Name,
		Status:    domain.ProjectActive,
		CreatedBy: TestUserID,
		CreatedAt: time.Now().UTC(),
	}
	f.nextProjectID++
	applyProjectForm(&p, form)
	f.projects[p.ID] = p
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, p)
}

func (f *FakeAPI) getProject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	f.mu.Lock()
	p, ok := f.projects[id]
	f.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Project not found or access denied")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (f *FakeAPI) updateProject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	var form domain.ProjectForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	f.mu.Lock()
	p, ok := f.projects[id]
	if ok {
		applyProjectForm(&p, form)
		p.UpdatedAt = time.Now().UTC()
		f.projects[id] = p
	}
	f.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Project not found or insufficient permissions")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (f *FakeAPI) deleteProject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	f.mu.Lock()
	_, ok := f.projects[id]
	delete(f.projects, id)
	for tid, t := range f.tasks {
		if t.ProjectID == id {
			delete(f.tasks, tid)
		}
	}
	f.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Project not found or insufficient permissions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

func (f *FakeAPI) listTasks(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	f.mu.Lock()
	_, ok := f.projects[id]
	out := make([]domain.Task, 0)
	for _, t := range f.tasks {
		if t.ProjectID == id {
			out = append(out, t)
		}
	}
	f.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Project not found or access denied")
		return
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) createTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	var form domain.TaskForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if form.Title == nil || *form.Title == "" {
		writeError(w, http.StatusBadRequest, "Task title is required")
		return
	}

	f.mu.Lock()
	if _, ok := f.projects[id]; !ok {
		f.mu.Unlock()
		writeError(w, http.StatusNotFound, "Project not found or access denied")
		return
	}
	t := domain.Task{
		ID:        f.nextTaskID,
		ProjectID: id,
		Title:     *form.Title,
		Status:    domain.TaskTodo,
		CreatedBy: TestUserID,
		CreatedAt: time.Now().UTC(),
	}
	f.nextTaskID++
	applyTaskForm(&t, form)
	f.tasks[t.ID] = t
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, t)
}

func (f *FakeAPI) updateTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	var form domain.TaskForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	f.mu.Lock()
	t, ok := f.tasks[id]
	if ok {
		applyTaskForm(&t, form)
		t.UpdatedAt = time.Now().UTC()
		f.tasks[id] = t
	}
	f.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Task not found or access denied")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (f *FakeAPI) deleteTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	f.mu.Lock()
	_, ok := f.tasks[id]
	delete(f.tasks, id)
	f.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Task not found or access denied")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}

func (f *FakeAPI) myTasks(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	out := make([]domain.Task, 0)
	for _, t := range f.tasks {
		if t.AssignedTo == TestUserID {
			out = append(out, t)
		}
	}
	f.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, out)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func applyProjectForm(p *domain.Project, form domain.ProjectForm) {
	if form.Name != nil {
		p.Name = *form.Name
	}
	if form.Description != nil {
		p.Description = *form.Description
	}
	if form.Status != nil {
		p.Status = *form.Status
	}
	if form.StartDate != nil {
		p.StartDate = *form.StartDate
	}
	if form.EndDate != nil {
		p.EndDate = *form.EndDate
	}
}

func applyTaskForm(t *domain.Task, form domain.TaskForm) {
	if form.Title != nil {
		t.Title = *form.Title
	}
	if form.Description != nil {
		t.Description = *form.Description
	}
	if form.Status != nil {
		t.Status = *form.Status
	}
	if form.AssignedTo != nil {
		t.AssignedTo = *form.AssignedTo
	}
	if form.DueDate != nil {
		t.DueDate = *form.DueDate
	}
	if form.Priority != nil {
		t.Priority = *form.Priority
	}
}

func pathID(r *http.Request, name string) int {
	id, err := strconv.Atoi(strings.TrimSpace(r.PathValue(name)))
	if err != nil {
		return -1
	}
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
