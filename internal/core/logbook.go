package core

import (
	"log/slog"

	"github.com/kilupskalvis/qsolog/internal/models"
)

// LogAppender records new log entries
type LogAppender interface {
	AppendLog(entry *models.LogEntry, profileID int64) (*models.LogEntry, error)
}

// Contact holds the raw values entered for a new QSO
type Contact struct {
	Call      string
	Band      string
	Frequency string
	Mode      string
	RSTTX     string
	RSTRX     string
	Power     string
	Comments  string
	ProfileID int64
}

// LogContact appends c to the log as given; values are not validated
func LogContact(st LogAppender, c Contact) (*models.LogEntry, error) {
	entry := &models.LogEntry{
		Call:      c.Call,
		RSTTX:     c.RSTTX,
		RSTRX:     c.RSTRX,
		Band:      c.Band,
		Frequency: c.Frequency,
		Mode:      c.Mode,
		Power:     c.Power,
		Comments:  c.Comments,
	}

	stored, err := st.AppendLog(entry, c.ProfileID)
	if err != nil {
		return nil, err
	}

	slog.Info("logged contact", "call", stored.Call, "band", stored.Band, "mode", stored.Mode, "profile_id", stored.ProfileID)
	return stored, nil
}
