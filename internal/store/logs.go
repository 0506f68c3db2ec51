package store

import (
	"fmt"

	"github.com/kilupskalvis/qsolog/internal/models"
)

// AppendLog records a QSO against profileID, stamping it with the current
// time. The caller's Timestamp, ID and ProfileID are ignored. Returns
// ErrProfileNotFound, writing nothing, if the profile does not exist.
func (s *Store) AppendLog(entry *models.LogEntry, profileID int64) (*models.LogEntry, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback()

	exists, err := profileExists(tx, profileID)
	if err != nil {
		return nil, fmt.Errorf("check profile: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %d", ErrProfileNotFound, profileID)
	}

	timestamp := models.FormatTimestamp(s.now())
	res, err := tx.Exec(`
		INSERT INTO log_entry (timestamp, call, rsttx, rstrx, band, frequency, mode, power, comments, profile_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, timestamp, entry.Call, entry.RSTTX, entry.RSTRX, entry.Band, entry.Frequency,
		entry.Mode, entry.Power, entry.Comments, profileID)
	if err != nil {
		return nil, fmt.Errorf("insert log entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit append: %w", err)
	}

	stored := *entry
	stored.ID = id
	stored.Timestamp = parseTimestamp(timestamp)
	stored.ProfileID = profileID
	return &stored, nil
}

// ListLogs returns log entries newest first, most recently appended first
// among equal timestamps. A limit of 0 or less returns everything.
func (s *Store) ListLogs(limit int) ([]*models.LogEntry, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	query := `
		SELECT id, timestamp, call, rsttx, rstrx, band, frequency, mode, power, comments, profile_id
		FROM log_entry
		ORDER BY timestamp DESC, id DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query log entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.LogEntry
	for rows.Next() {
		var e models.LogEntry
		var timestamp string
		if err := rows.Scan(&e.ID, &timestamp, &e.Call, &e.RSTTX, &e.RSTRX, &e.Band,
			&e.Frequency, &e.Mode, &e.Power, &e.Comments, &e.ProfileID); err != nil {
			return nil, err
		}
		e.Timestamp = parseTimestamp(timestamp)
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// ListEnriched returns every log entry joined with its owning profile, newest
// first. Entries whose profile has been deleted are left out.
func (s *Store) ListEnriched() ([]*models.EnrichedLogEntry, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT l.id, l.timestamp, l.call, l.rsttx, l.rstrx, l.band, l.frequency, l.mode, l.power, l.comments,
			p.id, p.name, p.call, p.grid, p.cqz, p.ituz, p.dxcc, p.cont
		FROM log_entry l
		JOIN operator_profile p ON l.profile_id = p.id
		ORDER BY l.timestamp DESC, l.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query enriched log entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.EnrichedLogEntry
	for rows.Next() {
		var e models.EnrichedLogEntry
		var timestamp string
		p := &e.Profile
		if err := rows.Scan(&e.ID, &timestamp, &e.Call, &e.RSTTX, &e.RSTRX, &e.Band,
			&e.Frequency, &e.Mode, &e.Power, &e.Comments,
			&p.ID, &p.Name, &p.Call, &p.Grid, &p.CQZ, &p.ITUZ, &p.DXCC, &p.Cont); err != nil {
			return nil, err
		}
		e.Timestamp = parseTimestamp(timestamp)
		e.ProfileID = p.ID
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
