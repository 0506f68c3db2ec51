package models

import (
	"errors"
	"fmt"
	"time"
)

// TimestampLayout is the textual form timestamps are stored and entered in (UTC)
const TimestampLayout = "2006-01-02 15:04:05"

// ErrInvalidTimestamp is returned when timestamp text does not match TimestampLayout
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// ParseTimestamp parses "YYYY-MM-DD HH:MM:SS" as a UTC time. The text must
// match the layout exactly: no surrounding space and no fractional seconds.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	// time.Parse accepts a fractional seconds suffix the layout does not name
	if err != nil || t.Format(TimestampLayout) != s {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD HH:MM:SS", ErrInvalidTimestamp, s)
	}
	return t, nil
}

// FormatTimestamp renders t in UTC at second precision
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
