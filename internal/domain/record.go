package domain

// Record is the flat serialized form of a task, shared by the JSON store,
// the CSV codec and front-end rendering. Field order matches the on-disk
// column order.
type Record struct {
	ID          string  `json:"task_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
	CreatedAt   string  `json:"created_at"`
	Status      string  `json:"status"`
}

// RecordFields lists the record field names in serialization order.
// The CSV header row uses exactly these columns.
func RecordFields() []string {
	return []string{"task_id", "title", "description", "due_date", "priority", "category", "created_at", "status"}
}

// Record converts the task to its serialized form.
func (t *Task) Record() Record {
	var due *string
	if t.dueDate != "" {
		d := t.dueDate
		due = &d
	}
	return Record{
		ID:          t.id,
		Title:       t.title,
		Description: t.description,
		DueDate:     due,
		Priority:    t.priority.String(),
		Category:    t.category,
		CreatedAt:   t.createdAt,
		Status:      string(t.status),
	}
}

// TaskFromRecord reconstructs a task from its serialized form. Title,
// due date and priority are validated as in NewTask; an unrecognized
// status falls back to pending instead of failing (see StatusFromRecord).
func TaskFromRecord(r Record) (*Task, error) {
	due := ""
	if r.DueDate != nil {
		due = *r.DueDate
	}
	return NewTask(r.Title, NewTaskParams{
		Description: r.Description,
		DueDate:     due,
		Priority:    r.Priority,
		Category:    r.Category,
		ID:          r.ID,
		CreatedAt:   r.CreatedAt,
		Status:      StatusFromRecord(r.Status),
	})
}
