package util

import (
	"testing"
	"time"
)

func TestToInputDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"25/12/2024", "2024-12-25"},
		{"01/02/2024", "2024-02-01"}, // day first, not month
		{"2024-12-25", "2024-12-25"}, // already ISO
		{"garbage", "garbage"},       // passes through
		{"", ""},
	}

	for _, tt := range tests {
		if got := ToInputDate(tt.in); got != tt.want {
			t.Errorf("ToInputDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToDisplayDate(t *testing.T) {
	if got := ToDisplayDate("2024-12-25"); got != "25/12/2024" {
		t.Errorf("Expected 25/12/2024, got %s", got)
	}
	if got := ToDisplayDate("not-a-date"); got != "not-a-date" {
		t.Errorf("Expected pass-through, got %s", got)
	}
}

func TestDateRoundTrip(t *testing.T) {
	// Storage -> input -> storage must be lossless
	stored := "07/03/2025"
	if got := ToDisplayDate(ToInputDate(stored)); got != stored {
		t.Errorf("Round trip changed %q to %q", stored, got)
	}
}

func TestParseFlexibleDate(t *testing.T) {
	want := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"2025-03-07", "07/03/2025", "07/03/25"} {
		got, err := ParseFlexibleDate(in)
		if err != nil {
			t.Fatalf("ParseFlexibleDate(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Errorf("ParseFlexibleDate(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseFlexibleDate("tomorrow"); err == nil {
		t.Error("Expected error for unrecognized date")
	}
}

func TestValidISODate(t *testing.T) {
	if !ValidISODate("2024-06-30") {
		t.Error("Expected valid")
	}
	if ValidISODate("30/06/2024") {
		t.Error("Expected invalid for display format")
	}
	if ValidISODate("2024-13-01") {
		t.Error("Expected invalid for month 13")
	}
}
