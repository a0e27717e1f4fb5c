package domain

import (
	"math"
	"time"
)

// ReportFilter selects which records a report includes. At most one of
// the fields should be set; the first set one wins.
type ReportFilter struct {
	CompletedOnly bool
	PendingOnly   bool
	OverdueOnly   bool
}

// TaskReport summarizes a slice of task records.
type TaskReport struct {
	Total          int
	Completed      int
	Pending        int
	Overdue        int
	CompletionRate float64
	Tasks          []Record // records matching the filter
}

// GenerateReport builds counts and a completion rate over the given
// records and returns the subset selected by the filter. Overdue is
// evaluated against now.
func GenerateReport(records []Record, filter ReportFilter, now time.Time) TaskReport {
	var completed, pending, overdue []Record
	for _, r := range records {
		switch Status(r.Status) {
		case StatusCompleted:
			completed = append(completed, r)
		case StatusPending:
			pending = append(pending, r)
		}
		if RecordOverdueAt(r, now) {
			overdue = append(overdue, r)
		}
	}

	rate := 0.0
	if len(records) > 0 {
		rate = math.Round(float64(len(completed))/float64(len(records))*1000) / 10
	}

	selected := records
	switch {
	case filter.CompletedOnly:
		selected = completed
	case filter.PendingOnly:
		selected = pending
	case filter.OverdueOnly:
		selected = overdue
	}

	return TaskReport{
		Total:          len(records),
		Completed:      len(completed),
		Pending:        len(pending),
		Overdue:        len(overdue),
		CompletionRate: rate,
		Tasks:          selected,
	}
}
