package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kilupskalvis/qsolog/internal/models"
)

// ErrProfileNotFound is returned when a profile id does not resolve to a row
var ErrProfileNotFound = errors.New("operator profile not found")

// CreateProfile inserts a profile with placeholder attributes and returns its id.
// Ids are never reused, even after deletion.
func (s *Store) CreateProfile() (int64, error) {
	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.mu.Unlock()

	attrs := models.PlaceholderAttributes()
	res, err := s.db.Exec(`
		INSERT INTO operator_profile (name, call, grid, cqz, ituz, dxcc, cont)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, attrs.Name, attrs.Call, attrs.Grid, attrs.CQZ, attrs.ITUZ, attrs.DXCC, attrs.Cont)
	if err != nil {
		return 0, fmt.Errorf("insert profile: %w", err)
	}

	return res.LastInsertId()
}

// ListProfiles returns all profiles in ascending id order
func (s *Store) ListProfiles() ([]*models.OperatorProfile, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT id, name, call, grid, cqz, ituz, dxcc, cont
		FROM operator_profile ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.OperatorProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// GetProfile retrieves a profile by id. Returns ErrProfileNotFound if missing.
func (s *Store) GetProfile(id int64) (*models.OperatorProfile, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	row := s.db.QueryRow(`
		SELECT id, name, call, grid, cqz, ituz, dxcc, cont
		FROM operator_profile WHERE id = ?
	`, id)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrProfileNotFound, id)
	}
	return p, err
}

// UpdateProfile replaces every attribute of the given profile
func (s *Store) UpdateProfile(id int64, attrs models.ProfileAttributes) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE operator_profile
		SET name = ?, call = ?, grid = ?, cqz = ?, ituz = ?, dxcc = ?, cont = ?
		WHERE id = ?
	`, attrs.Name, attrs.Call, attrs.Grid, attrs.CQZ, attrs.ITUZ, attrs.DXCC, attrs.Cont, id)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	return requireAffected(res, id)
}

// DeleteProfile removes a profile. Log entries that reference it are kept
// and become dangling; they no longer appear in exports.
func (s *Store) DeleteProfile(id int64) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM operator_profile WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	return requireAffected(res, id)
}

func requireAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrProfileNotFound, id)
	}
	return nil
}

// profileExists must be called with the lock held
func profileExists(q interface {
	QueryRow(query string, args ...any) *sql.Row
}, id int64) (bool, error) {
	var exists bool
	err := q.QueryRow("SELECT EXISTS (SELECT 1 FROM operator_profile WHERE id = ?)", id).Scan(&exists)
	return exists, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(r rowScanner) (*models.OperatorProfile, error) {
	var p models.OperatorProfile
	err := r.Scan(&p.ID, &p.Name, &p.Call, &p.Grid, &p.CQZ, &p.ITUZ, &p.DXCC, &p.Cont)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
