package domain

import (
	"errors"
	"testing"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"low", PriorityLow},
		{"l", PriorityLow},
		{"LOW", PriorityLow},
		{" L ", PriorityLow},
		{"medium", PriorityMedium},
		{"med", PriorityMedium},
		{"m", PriorityMedium},
		{"MeD", PriorityMedium},
		{"high", PriorityHigh},
		{"h", PriorityHigh},
		{"HIGH", PriorityHigh},
		{"", PriorityMedium},
		{"   ", PriorityMedium},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if err != nil {
			t.Errorf("ParsePriority(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePriority_Invalid(t *testing.T) {
	for _, in := range []string{"urgent", "critical", "0", "lowest"} {
		if _, err := ParsePriority(in); !errors.Is(err, ErrValidation) {
			t.Errorf("ParsePriority(%q) error = %v, want ErrValidation", in, err)
		}
	}
}

func TestPriority_Ordering(t *testing.T) {
	if !(PriorityLow < PriorityMedium && PriorityMedium < PriorityHigh) {
		t.Error("priority ordering broken, want low < medium < high")
	}
}

func TestNormalizePriority(t *testing.T) {
	got, err := NormalizePriority("H")
	if err != nil {
		t.Fatalf("NormalizePriority() error = %v", err)
	}
	if got != "high" {
		t.Errorf("NormalizePriority(\"H\") = %q, want \"high\"", got)
	}
	if _, err := NormalizePriority("nope"); err == nil {
		t.Error("NormalizePriority(\"nope\") error = nil, want error")
	}
}

func TestValidPriority(t *testing.T) {
	if !ValidPriority("med") {
		t.Error("ValidPriority(\"med\") = false, want true")
	}
	if !ValidPriority("") {
		t.Error("ValidPriority(\"\") = false, want true (defaults to medium)")
	}
	if ValidPriority("urgent") {
		t.Error("ValidPriority(\"urgent\") = true, want false")
	}
}
