// Package dateform handles the dd/mm/yyyy text dates the registration form
// and the stored submission rows use. Internally everything is a time.Time;
// the text layout only exists at the wire and storage boundary.
package dateform

import (
	"fmt"
	"regexp"
	"time"

	"tm30/shared/timezone"
)

const Layout = "02/01/2006"

var wirePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Parse converts a boundary date string to a time.Time. It accepts the
// canonical dd/mm/yyyy layout and, for compatibility with rows written before
// the format was pinned down, ISO-8601 dates and timestamps.
func Parse(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}

	if wirePattern.MatchString(value) {
		t, err := timezone.Parse(Layout, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid dd/mm/yyyy date %q: %w", value, err)
		}

		return t, nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := timezone.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date value %q", value)
}

// Format renders a time.Time back to the dd/mm/yyyy wire layout.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, Layout)
}

// Reformat normalizes an arbitrary boundary date string to dd/mm/yyyy,
// returning the empty string when the input cannot be interpreted.
func Reformat(value string) string {
	t, err := Parse(value)
	if err != nil {
		return ""
	}

	return Format(t)
}

// Valid reports whether value parses as a boundary date.
func Valid(value string) bool {
	_, err := Parse(value)

	return err == nil
}
