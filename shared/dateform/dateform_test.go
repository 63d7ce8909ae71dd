package dateform_test

import (
	"testing"
	"time"

	"tm30/shared/dateform"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		year        int
		month       time.Month
		day         int
	}{
		{
			name:  "canonical dd/mm/yyyy",
			input: "01/09/2026",
			year:  2026, month: time.September, day: 1,
		},
		{
			name:  "day and month are not swapped",
			input: "03/09/2026",
			year:  2026, month: time.September, day: 3,
		},
		{
			name:  "legacy ISO date",
			input: "2026-09-01",
			year:  2026, month: time.September, day: 1,
		},
		{
			name:  "legacy RFC3339 timestamp",
			input: "2026-09-01T10:30:00Z",
			year:  2026, month: time.September, day: 1,
		},
		{
			name:        "empty value",
			input:       "",
			expectError: true,
		},
		{
			name:        "wrong separator",
			input:       "01-09-2026",
			expectError: true,
		},
		{
			name:        "nonsense month",
			input:       "01/13/2026",
			expectError: true,
		},
		{
			name:        "free text",
			input:       "next tuesday",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := dateform.Parse(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error for %q, got %v", tt.input, parsed)
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error for %q, got %v", tt.input, err)
			}

			if parsed.Year() != tt.year || parsed.Month() != tt.month || parsed.Day() != tt.day {
				t.Errorf("expected %04d-%02d-%02d, got %v", tt.year, tt.month, tt.day, parsed)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := dateform.Format(time.Time{}); got != "" {
		t.Errorf("expected empty string for zero time, got %q", got)
	}

	parsed, err := dateform.Parse("03/09/2026")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if got := dateform.Format(parsed); got != "03/09/2026" {
		t.Errorf("expected 03/09/2026, got %q", got)
	}
}

func TestReformat(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "01/09/2026", expected: "01/09/2026"},
		{input: "2026-09-01", expected: "01/09/2026"},
		{input: "garbage", expected: ""},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		if got := dateform.Reformat(tt.input); got != tt.expected {
			t.Errorf("Reformat(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestValid(t *testing.T) {
	if !dateform.Valid("01/09/2026") {
		t.Error("expected 01/09/2026 to be valid")
	}
	if dateform.Valid("32/01/2026") {
		t.Error("expected 32/01/2026 to be invalid")
	}
	if dateform.Valid("") {
		t.Error("expected empty string to be invalid")
	}
}
