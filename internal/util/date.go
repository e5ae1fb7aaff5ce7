// Package util provides date and identifier helpers shared across the
// application.
package util

import (
	"fmt"
	"time"
)

// Date layouts used across the collections. Forms edit in the ISO
// layout; the production collection stores and displays the localized
// one, and tasks use the short form.
const (
	ISODateLayout     = "2006-01-02"
	DisplayDateLayout = "02/01/2006"
	ShortDateLayout   = "02/01/06"
)

// ToInputDate converts a stored DD/MM/YYYY date to the ISO YYYY-MM-DD
// form used by form fields. Already-ISO input passes through unchanged
// so edits survive a backend that stores either representation.
func ToInputDate(s string) string {
	if t, err := time.Parse(DisplayDateLayout, s); err == nil {
		return t.Format(ISODateLayout)
	}
	if _, err := time.Parse(ISODateLayout, s); err == nil {
		return s
	}
	return s
}

// ToDisplayDate converts an ISO YYYY-MM-DD date to DD/MM/YYYY.
// Non-ISO input passes through unchanged.
func ToDisplayDate(s string) string {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(DisplayDateLayout)
}

// ParseFlexibleDate parses a date in any of the layouts above.
// Used by sort comparators, where unparseable dates must still produce
// a total order; callers treat the zero time as "smallest".
func ParseFlexibleDate(s string) (time.Time, error) {
	for _, layout := range []string{ISODateLayout, DisplayDateLayout, ShortDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ValidISODate reports whether s is a valid YYYY-MM-DD date.
func ValidISODate(s string) bool {
	_, err := time.Parse(ISODateLayout, s)
	return err == nil
}

// Today returns the current date in the ISO layout.
func Today() string {
	return time.Now().Format(ISODateLayout)
}
