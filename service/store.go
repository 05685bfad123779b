package service

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the SQLite-backed persistence layer. All records live in one
// database file; the zero value is not usable, call Open.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and runs
// migrations. The parent directory is created if it does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id         TEXT PRIMARY KEY,
			file_name  TEXT NOT NULL,
			file_size  INTEGER NOT NULL DEFAULT 0,
			doc_type   TEXT NOT NULL,
			status     TEXT NOT NULL,
			error_msg  TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS court_order_cases (
			id                    TEXT PRIMARY KEY,
			case_id               TEXT NOT NULL UNIQUE,
			court_order_date      TEXT NOT NULL DEFAULT '',
			court_location        TEXT NOT NULL DEFAULT '',
			victim_statement      TEXT NOT NULL DEFAULT '',
			plaintiff_age         TEXT NOT NULL DEFAULT '',
			plaintiff_gender      TEXT NOT NULL DEFAULT '',
			perpetrator_statement TEXT NOT NULL DEFAULT '',
			defendant_age         TEXT NOT NULL DEFAULT '',
			defendant_gender      TEXT NOT NULL DEFAULT '',
			charge_offense        TEXT NOT NULL DEFAULT '',
			court_ruling          TEXT NOT NULL DEFAULT '',
			sentence_fine         TEXT NOT NULL DEFAULT '',
			court_action          TEXT NOT NULL DEFAULT '',
			evidence_summary      TEXT NOT NULL DEFAULT '',
			status                TEXT NOT NULL DEFAULT 'pending',
			recurrence            TEXT NOT NULL DEFAULT '',
			document_id           TEXT NOT NULL DEFAULT '',
			created_at            DATETIME NOT NULL,
			updated_at            DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS police_reports (
			id                      TEXT PRIMARY KEY,
			case_id                 TEXT NOT NULL UNIQUE,
			incident_date           TEXT NOT NULL DEFAULT '',
			incident_time           TEXT NOT NULL DEFAULT '',
			report_date             TEXT NOT NULL DEFAULT '',
			victim_name             TEXT NOT NULL DEFAULT '',
			victim_age              TEXT NOT NULL DEFAULT '',
			victim_gender           TEXT NOT NULL DEFAULT '',
			victim_nationality      TEXT NOT NULL DEFAULT '',
			perpetrator_name        TEXT NOT NULL DEFAULT '',
			perpetrator_gender      TEXT NOT NULL DEFAULT '',
			perpetrator_nationality TEXT NOT NULL DEFAULT '',
			relationship_to_victim  TEXT NOT NULL DEFAULT '',
			incident_location       TEXT NOT NULL DEFAULT '',
			incident_summary        TEXT NOT NULL DEFAULT '',
			type_of_violence        TEXT NOT NULL DEFAULT '',
			injury_description      TEXT NOT NULL DEFAULT '',
			evidence_mentioned      TEXT NOT NULL DEFAULT '',
			reported_to_authorities TEXT NOT NULL DEFAULT '',
			action_taken            TEXT NOT NULL DEFAULT '',
			recurrence              TEXT NOT NULL DEFAULT '',
			case_status             TEXT NOT NULL DEFAULT 'ongoing',
			relevant_laws           TEXT NOT NULL DEFAULT '',
			prior_criminal_history  TEXT NOT NULL DEFAULT '',
			document_id             TEXT NOT NULL DEFAULT '',
			created_at              DATETIME NOT NULL,
			updated_at              DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS predictions (
			id               TEXT PRIMARY KEY,
			case_id          TEXT NOT NULL UNIQUE,
			case_summary     TEXT NOT NULL DEFAULT '',
			suggested_action TEXT NOT NULL DEFAULT '',
			police_report_id TEXT NOT NULL DEFAULT '',
			created_at       DATETIME NOT NULL,
			updated_at       DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_court_order_cases_status ON court_order_cases(status)`,
		`CREATE INDEX IF NOT EXISTS idx_police_reports_status ON police_reports(case_status)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
