package store

import (
	"database/sql"
	"fmt"
)

// Schema versions:
//
//	1: legacy layout (tables operatorconfig and logs, column operator_config)
//	2: operator_profile and log_entry with the profile insert trigger
const currentSchemaVersion = 2

// legacyDefaultProfileID is the profile old releases attached every QSO to
// before multiple profiles existed.
const legacyDefaultProfileID = 0

// runMigrations applies any pending schema upgrades. Called by Initialize with
// the lock held.
func (s *Store) runMigrations() error {
	version, err := s.getSchemaVersion()
	if err != nil {
		return err
	}

	if version < 2 {
		if err := s.migrateToV2(); err != nil {
			return fmt.Errorf("migration to v2 failed: %w", err)
		}
	}

	return nil
}

// getSchemaVersion returns the recorded schema version, 1 if none was recorded
func (s *Store) getSchemaVersion() (int, error) {
	if !s.tableExists("qsolog_schema_version") {
		return 1, nil
	}

	var version int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 1) FROM qsolog_schema_version").Scan(&version)
	if err != nil {
		return 0, err
	}

	return version, nil
}

// migrateToV2 moves rows from the legacy tables into operator_profile and
// log_entry, keeping their ids.
func (s *Store) migrateToV2() error {
	// The connection pool holds a single connection, so inspect before the tx
	hasProfiles := s.tableExists("operatorconfig")
	hasLogs := s.tableExists("logs")
	hasPower := hasLogs && s.columnExists("logs", "power")

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Legacy rows may reference profiles that no longer exist
	if _, err := tx.Exec("DROP TRIGGER IF EXISTS log_entry_profile_exists"); err != nil {
		return err
	}

	if hasProfiles {
		_, err := tx.Exec(`
			INSERT INTO operator_profile (id, name, call, grid, cqz, ituz, dxcc, cont)
			SELECT id, COALESCE(name, ''), COALESCE(call, ''), COALESCE(grid, ''),
				COALESCE(cqz, ''), COALESCE(ituz, ''), COALESCE(dxcc, ''), COALESCE(cont, '')
			FROM operatorconfig
			WHERE id NOT IN (SELECT id FROM operator_profile)
		`)
		if err != nil {
			return fmt.Errorf("copy legacy profiles: %w", err)
		}
	}

	if hasLogs {
		if err := migrateLegacyLogs(tx, hasPower); err != nil {
			return err
		}
	}

	for _, table := range []string{"logs", "operatorconfig"} {
		if _, err := tx.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return fmt.Errorf("drop legacy table %s: %w", table, err)
		}
	}

	if _, err := tx.Exec("INSERT OR REPLACE INTO qsolog_schema_version (version) VALUES (?)", 2); err != nil {
		return err
	}

	return tx.Commit()
}

func migrateLegacyLogs(tx *sql.Tx, hasPower bool) error {
	// Entries logged before profiles existed point at profile 0
	var needsDefault bool
	err := tx.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM logs WHERE operator_config = ?
		) AND NOT EXISTS (
			SELECT 1 FROM operator_profile WHERE id = ?
		)
	`, legacyDefaultProfileID, legacyDefaultProfileID).Scan(&needsDefault)
	if err != nil {
		return fmt.Errorf("check legacy default profile: %w", err)
	}
	if needsDefault {
		_, err := tx.Exec("INSERT INTO operator_profile (id, name) VALUES (?, 'Default')", legacyDefaultProfileID)
		if err != nil {
			return fmt.Errorf("create legacy default profile: %w", err)
		}
	}

	power := "''"
	if hasPower {
		power = "COALESCE(power, '')"
	}
	_, err = tx.Exec(`
		INSERT INTO log_entry (id, timestamp, call, rsttx, rstrx, band, frequency, mode, power, comments, profile_id)
		SELECT id, COALESCE(timestamp, ''), COALESCE(call, ''), COALESCE(rsttx, ''), COALESCE(rstrx, ''),
			COALESCE(band, ''), COALESCE(frequency, ''), COALESCE(mode, ''), ` + power + `,
			COALESCE(comments, ''), operator_config
		FROM logs
		WHERE id NOT IN (SELECT id FROM log_entry)
	`)
	if err != nil {
		return fmt.Errorf("copy legacy logs: %w", err)
	}
	return nil
}

// tableExists checks if a table exists in the database
func (s *Store) tableExists(table string) bool {
	var name string
	err := s.db.QueryRow(`
		SELECT name FROM sqlite_master
		WHERE type='table' AND name = ?
	`, table).Scan(&name)
	return err == nil
}

// columnExists checks if a column exists in a table
func (s *Store) columnExists(table, column string) bool {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info(?)
		WHERE name = ?
	`, table, column).Scan(&count)
	return err == nil && count > 0
}
