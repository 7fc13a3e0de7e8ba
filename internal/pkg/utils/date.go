package utils

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseLocalDate reads the calendar day from an ISO 8601 date or date-time
// string and returns local midnight of that day in loc. Only the first ten
// characters are used, so "2026-02-17T23:30:00Z" is always Feb 17 whatever
// the offset of loc.
func ParseLocalDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(DateLayout) {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s[:len(DateLayout)], loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekBounds returns the Monday that starts anchor's week and the Monday
// after it, both at local midnight. The range is [start, end).
func WeekBounds(anchor time.Time) (start, end time.Time) {
	day := StartOfDay(anchor)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start = day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// InWeek reports whether day falls on a calendar day of anchor's week.
func InWeek(day, anchor time.Time) bool {
	start, end := WeekBounds(anchor)
	return !day.Before(start) && day.Before(end)
}

// FormatDate formats t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
