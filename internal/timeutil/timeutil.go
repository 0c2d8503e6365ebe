package timeutil

import "time"

// TimestampLayout is the canonical timestamp format for record stamps.
const TimestampLayout = time.RFC3339

// FormatTimestamp renders a time as an RFC 3339 UTC string.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses an RFC 3339 timestamp string.
func ParseTimestamp(value string) (time.Time, error) {
	return time.Parse(TimestampLayout, value)
}
