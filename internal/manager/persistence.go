package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ktsujichan/taskie/internal/domain"
)

// document is the JSON file structure: a single top-level "tasks" key
// holding the ordered task records.
type document struct {
	Tasks []domain.Record `json:"tasks"`
}

// SaveFile writes the collection as JSON to path, creating parent
// directories as needed. I/O failures are logged and reported through
// the return value, never raised.
func (m *Manager) SaveFile(path string) bool {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			m.log.Error("could not create store directory", "path", path, "error", err)
			return false
		}
	}

	content, err := json.MarshalIndent(document{Tasks: m.Records()}, "", "    ")
	if err != nil {
		m.log.Error("could not encode tasks", "path", path, "error", err)
		return false
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		m.log.Error("could not write task file", "path", path, "error", err)
		return false
	}
	return true
}

// LoadFile replaces the collection with the tasks from the JSON file at
// path. Errors propagate: a missing file wraps fs.ErrNotExist, malformed
// JSON wraps domain.ErrParse and a missing "tasks" key wraps
// domain.ErrSchema. The collection is untouched on failure.
func (m *Manager) LoadFile(path string) error {
	records, err := readDocument(path)
	if err != nil {
		return err
	}

	tasks := make([]*domain.Task, 0, len(records))
	for _, r := range records {
		task, err := domain.TaskFromRecord(r)
		if err != nil {
			return fmt.Errorf("task %q: %w", r.ID, err)
		}
		tasks = append(tasks, task)
	}
	m.tasks = tasks
	return nil
}

// MergeFile appends the tasks from the JSON file at path whose ids are
// not already present. Deduplication is by id only, never by content.
// Returns the number of tasks added. Error behavior matches LoadFile.
func (m *Manager) MergeFile(path string) (int, error) {
	records, err := readDocument(path)
	if err != nil {
		return 0, err
	}

	existing := make(map[string]bool, len(m.tasks))
	for _, t := range m.tasks {
		existing[t.ID()] = true
	}

	added := 0
	for _, r := range records {
		if existing[r.ID] {
			continue
		}
		task, err := domain.TaskFromRecord(r)
		if err != nil {
			return added, fmt.Errorf("task %q: %w", r.ID, err)
		}
		m.tasks = append(m.tasks, task)
		existing[task.ID()] = true
		added++
	}
	return added, nil
}

// readDocument reads and decodes a task file, distinguishing missing
// files, malformed JSON and schema violations.
func readDocument(path string) ([]domain.Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrParse, path, err)
	}
	tasksRaw, ok := raw["tasks"]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSchema, path)
	}

	var records []domain.Record
	if err := json.Unmarshal(tasksRaw, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrParse, path, err)
	}
	return records, nil
}
