package util

import "time"

// ISODate is the calendar date layout used across NAV history.
const ISODate = "2006-01-02"

// ParseDate parses an ISO-8601 calendar date. Returns (t, true) if it parsed.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TruncateDate reduces timestamps or datetime strings to the date prefix.
// Provider responses mix "2024-01-02" and "2024-01-02T00:00:00" shapes.
func TruncateDate(s string) string {
	if len(s) > len(ISODate) {
		return s[:len(ISODate)]
	}
	return s
}

// FormatDate formats t as an ISO-8601 calendar date.
func FormatDate(t time.Time) string {
	return t.Format(ISODate)
}
