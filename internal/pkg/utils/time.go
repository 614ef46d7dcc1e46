package utils

import (
	"time"

	"aushealthsim/internal/pkg/constvars"
)

// ParseDate reads a YYYY-MM-DD value into a date at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(constvars.DateFormat, value)
}

func FormatDate(t time.Time) string {
	return t.Format(constvars.DateFormat)
}

// Today returns the current date truncated to midnight UTC.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
