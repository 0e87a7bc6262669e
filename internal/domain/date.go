package domain

import (
	"strings"
	"time"
)

// ParseDate parses an incoming date value into a calendar day in loc.
// Values may arrive as plain dates ("2025-10-15") or full timestamps
// ("2025-10-15T14:30:00Z"); only the date component is kept, the time-of-day
// and any offset are discarded.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	base := s
	if idx := strings.Index(s, "T"); idx >= 0 {
		base = s[:idx]
	}

	parsed, err := time.ParseInLocation(DateFormat, base, loc)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// NormalizeDate truncates t to midnight of its calendar day in loc
func NormalizeDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// SameDay returns true if both instants fall on the same calendar day in loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	y1, m1, d1 := a.In(loc).Date()
	y2, m2, d2 := b.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
