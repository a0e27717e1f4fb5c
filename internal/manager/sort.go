package manager

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ktsujichan/taskie/internal/domain"
)

// Sort keys.
const (
	SortByDueDate   = "due_date"
	SortByPriority  = "priority"
	SortByTitle     = "title"
	SortByCreatedAt = "created_at"
	SortByCategory  = "category"
)

// SortKeys returns the valid sort keys.
func SortKeys() []string {
	return []string{SortByDueDate, SortByPriority, SortByTitle, SortByCreatedAt, SortByCategory}
}

// noDueDate sorts after every real date so undated tasks land last in
// ascending order.
const noDueDate = "9999-99-99"

// Sort returns the tasks ordered by the given key. The stored order is
// not changed. The sort is stable: tasks with equal keys keep their
// insertion order even when reverse is set. Unknown keys are a
// validation error.
func (m *Manager) Sort(key string, reverse bool) ([]*domain.Task, error) {
	var cmp func(a, b *domain.Task) int
	switch key {
	case SortByDueDate:
		cmp = func(a, b *domain.Task) int {
			return strings.Compare(dueKey(a), dueKey(b))
		}
	case SortByPriority:
		cmp = func(a, b *domain.Task) int {
			return int(a.Priority()) - int(b.Priority())
		}
	case SortByTitle:
		cmp = func(a, b *domain.Task) int {
			return strings.Compare(strings.ToLower(a.Title()), strings.ToLower(b.Title()))
		}
	case SortByCreatedAt:
		cmp = func(a, b *domain.Task) int {
			return strings.Compare(a.CreatedAt(), b.CreatedAt())
		}
	case SortByCategory:
		cmp = func(a, b *domain.Task) int {
			return strings.Compare(strings.ToLower(a.Category()), strings.ToLower(b.Category()))
		}
	default:
		return nil, fmt.Errorf("%w: invalid sort key %q, must be one of: %s",
			domain.ErrValidation, key, strings.Join(SortKeys(), ", "))
	}

	sorted := m.All()
	slices.SortStableFunc(sorted, func(a, b *domain.Task) int {
		c := cmp(a, b)
		if reverse {
			return -c
		}
		return c
	})
	return sorted, nil
}

func dueKey(t *domain.Task) string {
	if !t.HasDueDate() {
		return noDueDate
	}
	return t.DueDate()
}
