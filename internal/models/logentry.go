package models

import "time"

// LogEntry represents a single logged contact (QSO)
type LogEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Call      string    `json:"call"`
	RSTTX     string    `json:"rsttx"`
	RSTRX     string    `json:"rstrx"`
	Band      string    `json:"band"`
	Frequency string    `json:"frequency"` // MHz, as entered
	Mode      string    `json:"mode"`
	Power     string    `json:"power,omitempty"`
	Comments  string    `json:"comments,omitempty"`
	ProfileID int64     `json:"profile_id"`
}

// EnrichedLogEntry is a LogEntry joined with the profile that owns it.
// It only exists for the duration of an export.
type EnrichedLogEntry struct {
	LogEntry
	Profile OperatorProfile `json:"profile"`
}
