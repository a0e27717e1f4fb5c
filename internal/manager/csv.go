package manager

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/ktsujichan/taskie/internal/domain"
)

// ExportCSV writes the collection to a CSV file with a header row and
// one row per task, creating parent directories as needed. Returns false
// on I/O failure.
func (m *Manager) ExportCSV(path string) bool {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			m.log.Error("could not create export directory", "path", path, "error", err)
			return false
		}
	}

	f, err := os.Create(path)
	if err != nil {
		m.log.Error("could not create CSV file", "path", path, "error", err)
		return false
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(domain.RecordFields()); err != nil {
		m.log.Error("could not write CSV header", "path", path, "error", err)
		return false
	}
	for _, r := range m.Records() {
		due := ""
		if r.DueDate != nil {
			due = *r.DueDate
		}
		row := []string{r.ID, r.Title, r.Description, due, r.Priority, r.Category, r.CreatedAt, r.Status}
		if err := w.Write(row); err != nil {
			m.log.Error("could not write CSV row", "path", path, "error", err)
			return false
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		m.log.Error("could not flush CSV file", "path", path, "error", err)
		return false
	}
	return true
}

// ImportCSV replaces the collection with the tasks from a CSV file.
// Rows without a title and rows failing task validation are logged and
// skipped; the import still succeeds, even when zero rows survive.
// Returns false only when the file itself cannot be read.
func (m *Manager) ImportCSV(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		m.log.Error("could not open CSV file", "path", path, "error", err)
		return false
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows, validate per task instead

	header, err := r.Read()
	if err != nil {
		m.log.Error("could not read CSV header", "path", path, "error", err)
		return false
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	tasks := []*domain.Task{}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			m.log.Warn("skipping unreadable CSV row", "path", path, "error", err)
			continue
		}

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		if _, ok := columns["title"]; !ok {
			m.log.Warn("skipping CSV row missing title", "path", path)
			continue
		}

		record := domain.Record{
			ID:          field("task_id"),
			Title:       field("title"),
			Description: field("description"),
			Priority:    field("priority"),
			Category:    field("category"),
			CreatedAt:   field("created_at"),
			Status:      field("status"),
		}
		if due := field("due_date"); due != "" {
			record.DueDate = &due
		}

		task, err := domain.TaskFromRecord(record)
		if err != nil {
			m.log.Warn("skipping invalid CSV row", "path", path, "error", err)
			continue
		}
		tasks = append(tasks, task)
	}

	m.tasks = tasks
	return true
}
