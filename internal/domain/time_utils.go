package domain

import "time"

const (
	// TimestampLayout matches the ISO-8601 form the web client parses.
	TimestampLayout = "2006-01-02T15:04:05.000Z"
	OnlyDate        = "2006-01-02"
)

// FormatTimestamp renders t in UTC using TimestampLayout.
// The zero time renders as an empty string.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

// IdleFor reports whether more than timeout has elapsed between last and now.
func IdleFor(last, now time.Time, timeout time.Duration) bool {
	return now.Sub(last) > timeout
}
