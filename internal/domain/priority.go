package domain

import (
	"fmt"
	"strings"
)

// Priority represents the urgency of a task. Values are ordered so that
// PriorityLow < PriorityMedium < PriorityHigh for sorting.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// AllPriorities returns all valid priority values in ascending order.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// String returns the lowercase name used in files and on the wire.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Display returns a human-readable representation of the priority.
func (p Priority) Display() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Glyph returns the list marker for the priority.
func (p Priority) Glyph() string {
	switch p {
	case PriorityLow:
		return "⭘"
	case PriorityHigh:
		return "‼️"
	default:
		return "⬤"
	}
}

// ParsePriority converts a string to a Priority. Matching is
// case-insensitive and accepts the abbreviations "l", "m", "med" and "h".
// An empty string defaults to PriorityMedium. Anything else returns an
// error wrapping ErrValidation.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityMedium, nil
	case "low", "l":
		return PriorityLow, nil
	case "medium", "med", "m":
		return PriorityMedium, nil
	case "high", "h":
		return PriorityHigh, nil
	default:
		return 0, fmt.Errorf("%w: invalid priority %q, must be one of: low, medium, high", ErrValidation, s)
	}
}

// ValidPriority reports whether s would be accepted by ParsePriority.
// Exposed so front ends can pre-validate input before mutating anything.
func ValidPriority(s string) bool {
	_, err := ParsePriority(s)
	return err == nil
}

// NormalizePriority resolves a priority string to its canonical lowercase
// form ("low", "medium" or "high").
func NormalizePriority(s string) (string, error) {
	p, err := ParsePriority(s)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
