package domain

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"pending", StatusPending},
		{"PENDING", StatusPending},
		{"Completed", StatusCompleted},
		{" cancelled ", StatusCancelled},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if err != nil {
			t.Errorf("ParseStatus(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseStatus("done"); !errors.Is(err, ErrValidation) {
		t.Errorf("ParseStatus(\"done\") error = %v, want ErrValidation", err)
	}
}

func TestStatusFromRecord(t *testing.T) {
	if got := StatusFromRecord("completed"); got != StatusCompleted {
		t.Errorf("StatusFromRecord(\"completed\") = %v, want completed", got)
	}
	// Unknown and empty values fail closed to pending
	for _, in := range []string{"archived", "", "in_progress"} {
		if got := StatusFromRecord(in); got != StatusPending {
			t.Errorf("StatusFromRecord(%q) = %v, want pending", in, got)
		}
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.IsValid() {
			t.Errorf("IsValid(%v) = false, want true", s)
		}
	}
	if Status("done").IsValid() {
		t.Error("IsValid(\"done\") = true, want false")
	}
}
