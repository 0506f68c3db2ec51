package core

import (
	"fmt"
	"time"

	"github.com/kilupskalvis/qsolog/internal/models"
)

// EnrichedReader provides log entries joined with their profiles, newest first
type EnrichedReader interface {
	ListEnriched() ([]*models.EnrichedLogEntry, error)
}

// Range is an inclusive time window. A nil bound is open.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// ParseRange parses optional start and end bounds. Empty text means the bound
// is absent; anything else, whitespace included, must be "YYYY-MM-DD HH:MM:SS".
func ParseRange(start, end string) (Range, error) {
	var r Range

	if start != "" {
		t, err := models.ParseTimestamp(start)
		if err != nil {
			return Range{}, fmt.Errorf("start timestamp: %w", err)
		}
		r.Start = &t
	}

	if end != "" {
		t, err := models.ParseTimestamp(end)
		if err != nil {
			return Range{}, fmt.Errorf("end timestamp: %w", err)
		}
		r.End = &t
	}

	return r, nil
}

// Contains reports whether t lies within the range, bounds included
func (r Range) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// IsOpen returns true if neither bound is set
func (r Range) IsOpen() bool {
	return r.Start == nil && r.End == nil
}

// FilterEntries keeps the entries inside r, preserving their order
func FilterEntries(entries []*models.EnrichedLogEntry, r Range) []*models.EnrichedLogEntry {
	if r.IsOpen() {
		return entries
	}

	filtered := make([]*models.EnrichedLogEntry, 0, len(entries))
	for _, e := range entries {
		if r.Contains(e.Timestamp) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// ExportRange returns the enriched entries between start and end, newest
// first. Bounds are validated before the reader is touched.
func ExportRange(src EnrichedReader, start, end string) ([]*models.EnrichedLogEntry, error) {
	r, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}

	entries, err := src.ListEnriched()
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	return FilterEntries(entries, r), nil
}
