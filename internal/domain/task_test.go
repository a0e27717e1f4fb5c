package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewTask_TrimsTitle(t *testing.T) {
	task, err := NewTask("  Buy milk  ", NewTaskParams{})
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if task.Title() != "Buy milk" {
		t.Errorf("Title() = %q, want %q", task.Title(), "Buy milk")
	}
}

func TestNewTask_EmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := NewTask(title, NewTaskParams{}); !errors.Is(err, ErrValidation) {
			t.Errorf("NewTask(%q) error = %v, want ErrValidation", title, err)
		}
	}
}

func TestNewTask_Defaults(t *testing.T) {
	task, err := NewTask("Task", NewTaskParams{})
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if task.ID() == "" {
		t.Error("ID() is empty, want generated id")
	}
	if task.CreatedAt() == "" {
		t.Error("CreatedAt() is empty, want generated timestamp")
	}
	if _, err := time.Parse(time.RFC3339, task.CreatedAt()); err != nil {
		t.Errorf("CreatedAt() = %q is not RFC 3339: %v", task.CreatedAt(), err)
	}
	if task.Priority() != PriorityMedium {
		t.Errorf("Priority() = %v, want medium", task.Priority())
	}
	if task.Status() != StatusPending {
		t.Errorf("Status() = %v, want pending", task.Status())
	}
	if task.HasDueDate() {
		t.Error("HasDueDate() = true, want false")
	}
}

func TestNewTask_InvalidInput(t *testing.T) {
	if _, err := NewTask("Task", NewTaskParams{DueDate: "not-a-date"}); !errors.Is(err, ErrValidation) {
		t.Errorf("bad due date error = %v, want ErrValidation", err)
	}
	if _, err := NewTask("Task", NewTaskParams{DueDate: "2026-02-30"}); !errors.Is(err, ErrValidation) {
		t.Errorf("impossible date error = %v, want ErrValidation", err)
	}
	if _, err := NewTask("Task", NewTaskParams{Priority: "urgent"}); !errors.Is(err, ErrValidation) {
		t.Errorf("bad priority error = %v, want ErrValidation", err)
	}
}

func TestTask_SettersRejectAndKeep(t *testing.T) {
	task, err := NewTask("Original", NewTaskParams{DueDate: "2026-03-01", Priority: "high"})
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}

	if err := task.SetTitle("  "); !errors.Is(err, ErrValidation) {
		t.Errorf("SetTitle(blank) error = %v, want ErrValidation", err)
	}
	if task.Title() != "Original" {
		t.Errorf("Title() = %q after failed set, want unchanged", task.Title())
	}

	if err := task.SetDueDate("03/01/2026"); !errors.Is(err, ErrValidation) {
		t.Errorf("SetDueDate(bad) error = %v, want ErrValidation", err)
	}
	if task.DueDate() != "2026-03-01" {
		t.Errorf("DueDate() = %q after failed set, want unchanged", task.DueDate())
	}

	if err := task.SetPriority("urgent"); !errors.Is(err, ErrValidation) {
		t.Errorf("SetPriority(bad) error = %v, want ErrValidation", err)
	}
	if task.Priority() != PriorityHigh {
		t.Errorf("Priority() = %v after failed set, want unchanged", task.Priority())
	}
}

func TestTask_SetDueDateClears(t *testing.T) {
	task, _ := NewTask("Task", NewTaskParams{DueDate: "2026-03-01"})
	if err := task.SetDueDate(""); err != nil {
		t.Fatalf("SetDueDate(\"\") error = %v", err)
	}
	if task.HasDueDate() {
		t.Error("HasDueDate() = true after clearing")
	}
}

func TestTask_Transitions(t *testing.T) {
	task, _ := NewTask("Task", NewTaskParams{})

	task.MarkCompleted()
	if !task.IsCompleted() {
		t.Error("IsCompleted() = false after MarkCompleted")
	}

	// Any state is reachable from any other; repeats are no-ops
	task.MarkCancelled()
	if task.Status() != StatusCancelled {
		t.Errorf("Status() = %v, want cancelled", task.Status())
	}
	task.MarkCancelled()
	if task.Status() != StatusCancelled {
		t.Errorf("Status() = %v after repeat, want cancelled", task.Status())
	}
	task.MarkPending()
	if task.Status() != StatusPending {
		t.Errorf("Status() = %v, want pending", task.Status())
	}
}

func TestTask_OverdueAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		due     string
		status  Status
		overdue bool
	}{
		{"past due pending", "2026-06-14", StatusPending, true},
		{"past due cancelled still overdue", "2026-06-14", StatusCancelled, true},
		{"past due completed", "2026-06-14", StatusCompleted, false},
		{"due today", "2026-06-15", StatusPending, false},
		{"due tomorrow", "2026-06-16", StatusPending, false},
		{"no due date", "", StatusPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask("Task", NewTaskParams{DueDate: tt.due, Status: tt.status})
			if err != nil {
				t.Fatalf("NewTask() error = %v", err)
			}
			if got := task.OverdueAt(now); got != tt.overdue {
				t.Errorf("OverdueAt() = %v, want %v", got, tt.overdue)
			}
		})
	}
}

func TestTask_RecordRoundTrip(t *testing.T) {
	task, err := NewTask("Write report", NewTaskParams{
		Description: "Quarterly numbers",
		DueDate:     "2026-09-30",
		Priority:    "high",
		Category:    "work",
		Status:      StatusCancelled,
	})
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}

	restored, err := TaskFromRecord(task.Record())
	if err != nil {
		t.Fatalf("TaskFromRecord() error = %v", err)
	}
	if restored.Record() != task.Record() {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", restored.Record(), task.Record())
	}
}

func TestTaskFromRecord_UnknownStatusFailsClosed(t *testing.T) {
	task, err := TaskFromRecord(Record{Title: "Task", Status: "archived"})
	if err != nil {
		t.Fatalf("TaskFromRecord() error = %v", err)
	}
	if task.Status() != StatusPending {
		t.Errorf("Status() = %v, want pending fallback", task.Status())
	}

	// Priority stays strict: unlike status, bad values are rejected
	if _, err := TaskFromRecord(Record{Title: "Task", Priority: "urgent"}); !errors.Is(err, ErrValidation) {
		t.Errorf("bad priority error = %v, want ErrValidation", err)
	}
}

func TestTask_String(t *testing.T) {
	task, _ := NewTask("Buy milk", NewTaskParams{DueDate: "2026-01-02", Priority: "high"})
	want := "[□] ‼️ Buy milk (Due: 2026-01-02)"
	if got := task.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	task.MarkCompleted()
	if got := task.String(); got[:len("[✓]")] != "[✓]" {
		t.Errorf("String() = %q, want completed glyph prefix", got)
	}
}
