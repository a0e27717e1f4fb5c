package manager

import (
	"strings"

	"github.com/ktsujichan/taskie/internal/domain"
)

// Query methods return fresh slices and never mutate the stored
// collection. Empty results are empty slices, not errors.

// ByStatus returns the tasks with the given status.
func (m *Manager) ByStatus(status domain.Status) []*domain.Task {
	return m.Filter(func(t *domain.Task) bool { return t.Status() == status })
}

// ByStatusName returns the tasks whose status matches the given string,
// case-insensitively. Unknown status strings are a validation error.
func (m *Manager) ByStatusName(status string) ([]*domain.Task, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return m.ByStatus(parsed), nil
}

// Completed returns all completed tasks.
func (m *Manager) Completed() []*domain.Task {
	return m.ByStatus(domain.StatusCompleted)
}

// Pending returns all pending tasks.
func (m *Manager) Pending() []*domain.Task {
	return m.ByStatus(domain.StatusPending)
}

// Cancelled returns all cancelled tasks.
func (m *Manager) Cancelled() []*domain.Task {
	return m.ByStatus(domain.StatusCancelled)
}

// ByPriority returns the tasks with the given priority.
func (m *Manager) ByPriority(priority domain.Priority) []*domain.Task {
	return m.Filter(func(t *domain.Task) bool { return t.Priority() == priority })
}

// ByPriorityName returns the tasks whose priority matches the given
// string, accepting the same spellings as domain.ParsePriority.
func (m *Manager) ByPriorityName(priority string) ([]*domain.Task, error) {
	parsed, err := domain.ParsePriority(priority)
	if err != nil {
		return nil, err
	}
	return m.ByPriority(parsed), nil
}

// ByCategory returns the tasks in the given category, compared
// case-insensitively.
func (m *Manager) ByCategory(category string) []*domain.Task {
	return m.Filter(func(t *domain.Task) bool {
		return strings.EqualFold(t.Category(), category)
	})
}

// DueOn returns the tasks due exactly on the given YYYY-MM-DD date.
func (m *Manager) DueOn(date string) ([]*domain.Task, error) {
	normalized, err := domain.NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	return m.Filter(func(t *domain.Task) bool {
		return t.DueDate() == normalized
	}), nil
}

// DueBefore returns the tasks due strictly before the given date.
func (m *Manager) DueBefore(date string) ([]*domain.Task, error) {
	target, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return m.Filter(func(t *domain.Task) bool {
		due, ok := t.DueTime()
		return ok && due.Before(target)
	}), nil
}

// DueAfter returns the tasks due strictly after the given date.
func (m *Manager) DueAfter(date string) ([]*domain.Task, error) {
	target, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return m.Filter(func(t *domain.Task) bool {
		due, ok := t.DueTime()
		return ok && due.After(target)
	}), nil
}

// Overdue returns the tasks whose due date is strictly before today and
// that are not completed.
func (m *Manager) Overdue() []*domain.Task {
	now := m.clock.Now()
	return m.Filter(func(t *domain.Task) bool { return t.OverdueAt(now) })
}

// Search returns the tasks whose title or description contains the
// query, case-insensitively.
func (m *Manager) Search(query string) []*domain.Task {
	q := strings.ToLower(query)
	return m.Filter(func(t *domain.Task) bool {
		return strings.Contains(strings.ToLower(t.Title()), q) ||
			strings.Contains(strings.ToLower(t.Description()), q)
	})
}

// Filter returns the tasks for which the predicate is true, in
// insertion order.
func (m *Manager) Filter(pred func(*domain.Task) bool) []*domain.Task {
	out := []*domain.Task{}
	for _, t := range m.tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
