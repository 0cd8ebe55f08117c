// CLAUDE:SUMMARY SQLite bookkeeping of import sources: last import result and last availability check.
package importer

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one row of the import_sources table.
type Record struct {
	ID          string
	URL         string
	Description string
	License     string
	LastImport  *int64
	LastEntries *int
	LastCheck   *int64
	LastStatus  *int
	LastError   *string
	UpdatedAt   int64
}

// SourceDB manages the import_sources SQLite table.
type SourceDB struct {
	db *sql.DB
}

// OpenSourceDB opens (or creates) the SQLite database at path and ensures the
// import_sources table exists.
func OpenSourceDB(path string) (*SourceDB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open source db: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS import_sources (
		id           TEXT PRIMARY KEY,
		url          TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		license      TEXT NOT NULL DEFAULT '',
		last_import  INTEGER,
		last_entries INTEGER,
		last_check   INTEGER,
		last_status  INTEGER,
		last_error   TEXT,
		updated_at   INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create import_sources table: %w", err)
	}
	return &SourceDB{db: db}, nil
}

func (s *SourceDB) Close() error {
	return s.db.Close()
}

// Sync upserts one row per source. The declared URL, description and
// license win; import and check history is kept.
func (s *SourceDB) Sync(sources []Source) error {
	const q = `INSERT INTO import_sources (id, url, description, license, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			url = excluded.url,
			description = excluded.description,
			license = excluded.license,
			updated_at = CASE WHEN url = excluded.url THEN updated_at ELSE excluded.updated_at END`

	now := time.Now().Unix()
	for _, src := range sources {
		if _, err := s.db.Exec(q, src.ID, src.URL, src.Description, src.License, now); err != nil {
			return fmt.Errorf("sync %s: %w", src.ID, err)
		}
	}
	return nil
}

// RecordImport stores the outcome of an Import run.
func (s *SourceDB) RecordImport(id string, entries int, importErr error) error {
	var errPtr *string
	var entriesPtr *int
	if importErr != nil {
		msg := importErr.Error()
		errPtr = &msg
	} else {
		entriesPtr = &entries
	}
	_, err := s.db.Exec(
		`UPDATE import_sources SET last_import = ?, last_entries = COALESCE(?, last_entries), last_error = ? WHERE id = ?`,
		time.Now().Unix(), entriesPtr, errPtr, id,
	)
	if err != nil {
		return fmt.Errorf("record import for %s: %w", id, err)
	}
	return nil
}

// UpdateCheck persists the result of an availability check.
func (s *SourceDB) UpdateCheck(id string, status int, checkErr string) error {
	var errPtr *string
	if checkErr != "" {
		errPtr = &checkErr
	}
	_, err := s.db.Exec(
		`UPDATE import_sources SET last_check = ?, last_status = ?, last_error = ? WHERE id = ?`,
		time.Now().Unix(), status, errPtr, id,
	)
	if err != nil {
		return fmt.Errorf("update check for %s: %w", id, err)
	}
	return nil
}

// ListSources returns all rows ordered by id.
func (s *SourceDB) ListSources() ([]Record, error) {
	rows, err := s.db.Query(`SELECT id, url, description, license,
		last_import, last_entries, last_check, last_status, last_error, updated_at
		FROM import_sources ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.URL, &r.Description, &r.License,
			&r.LastImport, &r.LastEntries, &r.LastCheck, &r.LastStatus, &r.LastError, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
