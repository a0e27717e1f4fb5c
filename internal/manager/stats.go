package manager

import (
	"math"

	"github.com/ktsujichan/taskie/internal/domain"
)

// UncategorizedBucket is the stats bucket for tasks with no category.
const UncategorizedBucket = "Uncategorized"

// Stats summarizes the collection.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	Cancelled      int
	Overdue        int
	CompletionRate float64        // completed/total*100, one decimal, 0.0 when empty
	Categories     map[string]int // keyed by category name
	Priorities     map[string]int // always has low, medium and high keys
}

// Stats computes counts by status, priority and category, the overdue
// count and the completion rate.
func (m *Manager) Stats() Stats {
	stats := Stats{
		Categories: map[string]int{},
		Priorities: map[string]int{
			domain.PriorityLow.String():    0,
			domain.PriorityMedium.String(): 0,
			domain.PriorityHigh.String():   0,
		},
	}

	now := m.clock.Now()
	for _, t := range m.tasks {
		stats.Total++
		switch t.Status() {
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
		if t.OverdueAt(now) {
			stats.Overdue++
		}

		category := t.Category()
		if category == "" {
			category = UncategorizedBucket
		}
		stats.Categories[category]++
		stats.Priorities[t.Priority().String()]++
	}

	if stats.Total > 0 {
		rate := float64(stats.Completed) / float64(stats.Total) * 100
		stats.CompletionRate = math.Round(rate*10) / 10
	}
	return stats
}
