// Package manager implements the task collection aggregate: CRUD,
// querying, sorting, statistics and JSON/CSV persistence over an ordered
// in-memory set of tasks.
//
// A Manager is single-threaded and performs no file locking. When two
// processes write the same store file, the last save wins; callers that
// need cross-process consistency must serialize access themselves.
package manager

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/ktsujichan/taskie/internal/domain"
)

// Manager owns an ordered collection of tasks keyed by id. Insertion
// order is preserved; Sort returns reordered copies without touching the
// stored order.
type Manager struct {
	tasks []*domain.Task
	clock domain.Clock
	log   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock used for overdue evaluation.
func WithClock(clock domain.Clock) Option {
	return func(m *Manager) { m.clock = clock }
}

// WithLogger sets the logger used for non-fatal load and save failures.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// New creates an empty Manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		clock: domain.RealClock{},
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open creates a Manager hydrated from the JSON file at path. A missing
// file is fatal and propagates. Malformed JSON or a missing "tasks" key
// is logged and leaves the manager empty; hand-edited or truncated store
// files must not brick the front end, but a wrong path should.
func Open(path string, opts ...Option) (*Manager, error) {
	m := New(opts...)
	if err := m.LoadFile(path); err != nil {
		if errors.Is(err, domain.ErrParse) || errors.Is(err, domain.ErrSchema) {
			m.log.Warn("could not load tasks, starting with an empty list",
				"path", path, "error", err)
			return m, nil
		}
		return nil, err
	}
	return m, nil
}

// IsNotExist reports whether err indicates a missing store file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// AddParams holds the optional fields for Add.
type AddParams struct {
	Description string
	DueDate     string // YYYY-MM-DD, empty = none
	Priority    string // accepts abbreviations, empty = medium
	Category    string
}

// Add creates a task with the given title, appends it to the collection
// and returns it. Construction errors propagate unchanged.
func (m *Manager) Add(title string, params AddParams) (*domain.Task, error) {
	task, err := domain.NewTask(title, domain.NewTaskParams{
		Description: params.Description,
		DueDate:     params.DueDate,
		Priority:    params.Priority,
		Category:    params.Category,
	})
	if err != nil {
		return nil, err
	}
	m.tasks = append(m.tasks, task)
	return task, nil
}

// Get returns the task with the given id, or false if absent.
func (m *Manager) Get(id string) (*domain.Task, bool) {
	for _, t := range m.tasks {
		if t.ID() == id {
			return t, true
		}
	}
	return nil, false
}

// UpdateParams holds the fields for Update. A nil field means "leave
// unchanged"; there is no way to clear a field through Update.
type UpdateParams struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *string
	Category    *string
}

// Update applies the non-nil fields to the task with the given id, with
// the same per-field validation as the task setters. Fields are applied
// in order and the first validation failure stops the update; already
// applied fields keep their new values, matching setter semantics.
// Returns ErrTaskNotFound if the id is absent.
func (m *Manager) Update(id string, params UpdateParams) (*domain.Task, error) {
	task, ok := m.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}

	if params.Title != nil {
		if err := task.SetTitle(*params.Title); err != nil {
			return nil, err
		}
	}
	if params.Description != nil {
		task.SetDescription(*params.Description)
	}
	if params.DueDate != nil {
		if err := task.SetDueDate(*params.DueDate); err != nil {
			return nil, err
		}
	}
	if params.Priority != nil {
		if err := task.SetPriority(*params.Priority); err != nil {
			return nil, err
		}
	}
	if params.Category != nil {
		task.SetCategory(*params.Category)
	}
	return task, nil
}

// Delete removes the task with the given id. Returns true if a task was
// removed.
func (m *Manager) Delete(id string) bool {
	for i, t := range m.tasks {
		if t.ID() == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// MarkCompleted marks the task with the given id completed. Returns true
// if the task was found.
func (m *Manager) MarkCompleted(id string) bool {
	task, ok := m.Get(id)
	if ok {
		task.MarkCompleted()
	}
	return ok
}

// MarkPending marks the task with the given id pending. Returns true if
// the task was found.
func (m *Manager) MarkPending(id string) bool {
	task, ok := m.Get(id)
	if ok {
		task.MarkPending()
	}
	return ok
}

// MarkCancelled marks the task with the given id cancelled. Returns true
// if the task was found.
func (m *Manager) MarkCancelled(id string) bool {
	task, ok := m.Get(id)
	if ok {
		task.MarkCancelled()
	}
	return ok
}

// Len returns the number of tasks.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// All returns the tasks as a fresh slice in insertion order. Mutating
// the returned slice never affects the manager.
func (m *Manager) All() []*domain.Task {
	out := make([]*domain.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// At returns the task at the given position in insertion order.
func (m *Manager) At(i int) (*domain.Task, error) {
	if i < 0 || i >= len(m.tasks) {
		return nil, fmt.Errorf("%w: %d (have %d tasks)", domain.ErrIndexOutOfRange, i, len(m.tasks))
	}
	return m.tasks[i], nil
}

// Records returns the serialized form of all tasks in insertion order.
func (m *Manager) Records() []domain.Record {
	records := make([]domain.Record, 0, len(m.tasks))
	for _, t := range m.tasks {
		records = append(records, t.Record())
	}
	return records
}
