package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical date format used across the project.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// ParseDate parses a review date into a date-only time.Time.
// Accepts ISO 8601 dates plus a few common variants seen in exported data.
func ParseDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// FormatDate renders a time as the canonical YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
