package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2024-01-01 12:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), ts)

	ts, err = ParseTimestamp("2024-03-05 01:02:03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 1, 2, 3, 0, time.UTC), ts)
}

func TestParseTimestamp_Invalid(t *testing.T) {
	cases := []string{
		"not-a-date",
		"2024-01-01",
		"2024-01-01T12:00:00Z",
		"2024-13-01 12:00:00",
		"2024-01-01 12:00:00.5",
		"2024-01-01 12:00:00.999999",
		"2024-01-01 12:00:00,5",
		"2024-1-1 12:00:00",
		" 2024-01-01 12:00:00",
		"2024-01-01 12:00:00 ",
		" ",
		"",
	}
	for _, c := range cases {
		_, err := ParseTimestamp(c)
		assert.ErrorIs(t, err, ErrInvalidTimestamp, "input %q", c)
	}
}

func TestFormatTimestamp_TruncatesToSecondsInUTC(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	ts := time.Date(2024, 1, 1, 7, 0, 0, 999_000_000, loc)
	assert.Equal(t, "2024-01-01 12:00:00", FormatTimestamp(ts))
}

func TestOperatorProfile_Label(t *testing.T) {
	p := &OperatorProfile{ID: 1, ProfileAttributes: ProfileAttributes{Name: "Home", Call: "W1AW"}}
	assert.Equal(t, "Home (W1AW)", p.Label())

	p.Call = ""
	assert.Equal(t, "Home", p.Label())
}
