package domain

import (
	"strings"
	"time"
)

// DisplayOptions controls list rendering.
type DisplayOptions struct {
	ShowID   bool // append the short task id
	ShowDesc bool // append the description on an indented line
}

// shortIDLen is how many id characters list output shows.
const shortIDLen = 8

// RecordOverdueAt reports whether a serialized task is overdue at the
// given time: due date set, strictly before that day, and not completed.
func RecordOverdueAt(r Record, now time.Time) bool {
	if r.DueDate == nil || Status(r.Status) == StatusCompleted {
		return false
	}
	due, err := ParseDate(*r.DueDate)
	if err != nil {
		return false
	}
	today, _ := ParseDate(now.Format(DateLayout))
	return due.Before(today)
}

// FormatTask renders a one-line console summary of a task record:
// status glyph, priority glyph, title, then due date, category, short id
// and description as requested.
func FormatTask(r Record, opts DisplayOptions) string {
	status := StatusFromRecord(r.Status)
	priority, err := ParsePriority(r.Priority)
	if err != nil {
		priority = PriorityMedium
	}

	var b strings.Builder
	b.WriteString("[" + status.Glyph() + "] ")
	b.WriteString(priority.Glyph() + " ")
	if r.Title != "" {
		b.WriteString(r.Title)
	} else {
		b.WriteString("Untitled")
	}

	if r.DueDate != nil {
		if RecordOverdueAt(r, time.Now()) {
			b.WriteString(" (OVERDUE: " + *r.DueDate + ")")
		} else {
			b.WriteString(" (Due: " + *r.DueDate + ")")
		}
	}
	if r.Category != "" {
		b.WriteString(" #" + r.Category)
	}
	if opts.ShowID && r.ID != "" {
		id := r.ID
		if len(id) > shortIDLen {
			id = id[:shortIDLen]
		}
		b.WriteString(" [ID: " + id + "]")
	}
	if opts.ShowDesc && r.Description != "" {
		b.WriteString("\n    " + r.Description)
	}
	return b.String()
}

// FormatTaskList renders one line (or two with descriptions) per record.
// An empty list renders as a placeholder message.
func FormatTaskList(records []Record, opts DisplayOptions) string {
	if len(records) == 0 {
		return "No tasks found."
	}
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, FormatTask(r, opts))
	}
	return strings.Join(lines, "\n")
}
