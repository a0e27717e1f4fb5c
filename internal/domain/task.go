// Package domain contains core business entities and validation rules.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task represents a single actionable item. All fields are reached through
// accessors; setters validate and leave the task unchanged on failure.
type Task struct {
	id          string
	title       string
	description string
	dueDate     string // normalized YYYY-MM-DD, empty = no due date
	priority    Priority
	category    string
	createdAt   string
	status      Status
}

// NewTaskParams holds the optional fields for NewTask. The zero value is
// valid: no description, no due date, medium priority, no category,
// generated id and creation time, pending status.
type NewTaskParams struct {
	Description string
	DueDate     string // YYYY-MM-DD, empty = none
	Priority    string // accepts abbreviations, empty = medium
	Category    string
	ID          string // generated if empty
	CreatedAt   string // generated if empty
	Status      Status // zero value = pending
}

// NewTask creates a task with the given title. The title is trimmed and
// must be non-empty.
func NewTask(title string, params NewTaskParams) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: %s", ErrValidation, ErrEmptyTitle)
	}

	priority, err := ParsePriority(params.Priority)
	if err != nil {
		return nil, err
	}

	dueDate := ""
	if params.DueDate != "" {
		dueDate, err = NormalizeDate(params.DueDate)
		if err != nil {
			return nil, err
		}
	}

	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := params.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().Format(time.RFC3339)
	}
	status := params.Status
	if status == "" {
		status = StatusPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}

	return &Task{
		id:          id,
		title:       title,
		description: params.Description,
		dueDate:     dueDate,
		priority:    priority,
		category:    params.Category,
		createdAt:   createdAt,
		status:      status,
	}, nil
}

// Getters

func (t *Task) ID() string          { return t.id }
func (t *Task) Title() string       { return t.title }
func (t *Task) Description() string { return t.description }
func (t *Task) DueDate() string     { return t.dueDate }
func (t *Task) Priority() Priority  { return t.priority }
func (t *Task) Category() string    { return t.category }
func (t *Task) CreatedAt() string   { return t.createdAt }
func (t *Task) Status() Status      { return t.status }

// HasDueDate returns true if a due date is set.
func (t *Task) HasDueDate() bool { return t.dueDate != "" }

// DueTime returns the due date as a time and whether one is set.
func (t *Task) DueTime() (time.Time, bool) {
	if t.dueDate == "" {
		return time.Time{}, false
	}
	due, err := ParseDate(t.dueDate)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// SetTitle updates the title. The new title is trimmed and must be
// non-empty.
func (t *Task) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: %s", ErrValidation, ErrEmptyTitle)
	}
	t.title = title
	return nil
}

// SetDescription updates the description.
func (t *Task) SetDescription(description string) {
	t.description = description
}

// SetDueDate updates the due date. An empty string clears it.
func (t *Task) SetDueDate(dueDate string) error {
	if dueDate == "" {
		t.dueDate = ""
		return nil
	}
	normalized, err := NormalizeDate(dueDate)
	if err != nil {
		return err
	}
	t.dueDate = normalized
	return nil
}

// SetPriority updates the priority from a string, accepting the same
// values as ParsePriority.
func (t *Task) SetPriority(priority string) error {
	p, err := ParsePriority(priority)
	if err != nil {
		return err
	}
	t.priority = p
	return nil
}

// SetCategory updates the category.
func (t *Task) SetCategory(category string) {
	t.category = category
}

// SetStatus updates the status to a valid Status value.
func (t *Task) SetStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}
	t.status = status
	return nil
}

// Status transitions are unconditional overwrites: any state is reachable
// from any other, and repeating a transition is a no-op.

// MarkCompleted marks the task as completed.
func (t *Task) MarkCompleted() { t.status = StatusCompleted }

// MarkPending marks the task as pending.
func (t *Task) MarkPending() { t.status = StatusPending }

// MarkCancelled marks the task as cancelled.
func (t *Task) MarkCancelled() { t.status = StatusCancelled }

// IsCompleted returns true if the task is completed.
func (t *Task) IsCompleted() bool { return t.status == StatusCompleted }

// IsOverdue returns true if the due date is strictly before today and the
// task is not completed. Cancelled tasks still count as overdue;
// cancellation does not suppress the flag, only completion does.
func (t *Task) IsOverdue() bool {
	return t.OverdueAt(time.Now())
}

// OverdueAt is IsOverdue evaluated against an explicit current time.
func (t *Task) OverdueAt(now time.Time) bool {
	if t.IsCompleted() {
		return false
	}
	due, ok := t.DueTime()
	if !ok {
		return false
	}
	today, _ := ParseDate(now.Format(DateLayout))
	return due.Before(today)
}

// String returns a compact one-line summary of the task.
func (t *Task) String() string {
	var b strings.Builder
	b.WriteString("[" + t.status.Glyph() + "] ")
	b.WriteString(t.priority.Glyph() + " ")
	b.WriteString(t.title)
	if t.dueDate != "" {
		b.WriteString(" (Due: " + t.dueDate + ")")
	}
	return b.String()
}
