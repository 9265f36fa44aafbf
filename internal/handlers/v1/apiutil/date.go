package apiutil

import (
	"fmt"
	"time"
)

const dateOnly = "2006-01-02"

// ParseDate accepts a calendar date or an RFC3339 timestamp. Calendar dates
// are midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("Cast to date failed for value %q", s)
	}
	return t.UTC(), nil
}

// FormatDate renders t as RFC3339 in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
