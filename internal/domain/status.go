package domain

import (
	"fmt"
	"strings"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"   // Created, not yet done
	StatusCompleted Status = "completed" // Finished
	StatusCancelled Status = "cancelled" // Abandoned without finishing
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusCompleted, StatusCancelled}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// Glyph returns the single-character list marker for the status.
func (s Status) Glyph() string {
	switch s {
	case StatusCompleted:
		return "✓"
	case StatusCancelled:
		return "✗"
	default:
		return "□"
	}
}

// ParseStatus converts a string to a Status. Matching is case-insensitive.
// Unknown values return an error wrapping ErrValidation.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: invalid status %q, must be one of: pending, completed, cancelled", ErrValidation, s)
	}
}

// StatusFromRecord converts a serialized status string to a Status,
// failing closed to StatusPending on unrecognized values. Record
// deserialization deliberately never rejects a status, unlike priority
// parsing which does; old or hand-edited files keep loading.
func StatusFromRecord(s string) Status {
	status, err := ParseStatus(s)
	if err != nil {
		return StatusPending
	}
	return status
}
