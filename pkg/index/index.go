// CLAUDE:SUMMARY SQLite-backed search index storing every document token next to its lower_lay fold.
package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hazyhaar/lowerlay/pkg/lowerlay"
	_ "modernc.org/sqlite"
)

// DefaultLimit is the number of hits Search returns when no limit is given.
const DefaultLimit = 20

// ErrEmptyDocID is returned when a document is stored without an ID.
var ErrEmptyDocID = errors.New("empty document id")

// Hit is one document matching a search.
type Hit struct {
	DocID string `json:"doc_id"`
	Body  string `json:"body"`
	Hits  int    `json:"hits"`
}

// Index manages the docs and tokens SQLite tables.
type Index struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the
// docs and tokens tables exist.
func Open(path string) (*Index, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open index db: %w", err)
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS docs (
		doc_id     TEXT PRIMARY KEY,
		body       TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS tokens (
		doc_id   TEXT NOT NULL REFERENCES docs(doc_id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		token    TEXT NOT NULL,
		folded   TEXT NOT NULL,
		PRIMARY KEY (doc_id, position)
	);
	CREATE INDEX IF NOT EXISTS tokens_folded ON tokens(folded);`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index tables: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the SQLite connection.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// Put stores body under docID, replacing any previous version, and indexes
// the folded form of each of its words.
func (ix *Index) Put(ctx context.Context, docID, body string) error {
	if docID == "" {
		return ErrEmptyDocID
	}

	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put %s: %w", docID, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tokens WHERE doc_id = ?`, docID); err != nil {
		return fmt.Errorf("put %s: clear tokens: %w", docID, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO docs (doc_id, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(doc_id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		docID, body, time.Now().Unix(),
	); err != nil {
		return fmt.Errorf("put %s: upsert doc: %w", docID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tokens (doc_id, position, token, folded) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("put %s: prepare: %w", docID, err)
	}
	defer stmt.Close()

	for pos, tok := range Tokenize(body) {
		if _, err := stmt.ExecContext(ctx, docID, pos, tok, lowerlay.Fold(tok)); err != nil {
			return fmt.Errorf("put %s: token %d: %w", docID, pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("put %s: commit: %w", docID, err)
	}
	return nil
}

// Delete removes a document and its tokens. Deleting an unknown document
// is not an error.
func (ix *Index) Delete(ctx context.Context, docID string) error {
	if _, err := ix.db.ExecContext(ctx, `DELETE FROM docs WHERE doc_id = ?`, docID); err != nil {
		return fmt.Errorf("delete %s: %w", docID, err)
	}
	return nil
}

// Count returns the number of indexed documents.
func (ix *Index) Count(ctx context.Context) (int, error) {
	var n int
	if err := ix.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM docs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count docs: %w", err)
	}
	return n, nil
}

// Search returns the documents containing every word of query, compared
// after folding. Documents with more occurrences rank first; ties are
// ordered by ID. A limit <= 0 means DefaultLimit.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	seen := make(map[string]bool)
	var terms []any
	for _, tok := range Tokenize(query) {
		f := lowerlay.Fold(tok)
		if !seen[f] {
			seen[f] = true
			terms = append(terms, f)
		}
	}
	if len(terms) == 0 {
		return []Hit{}, nil
	}

	q := `SELECT d.doc_id, d.body, COUNT(*) AS hits
		FROM tokens t JOIN docs d ON d.doc_id = t.doc_id
		WHERE t.folded IN (` + strings.TrimSuffix(strings.Repeat("?,", len(terms)), ",") + `)
		GROUP BY d.doc_id
		HAVING COUNT(DISTINCT t.folded) = ?
		ORDER BY hits DESC, d.doc_id
		LIMIT ?`
	args := append(terms, len(terms), limit)

	rows, err := ix.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	defer rows.Close()

	hits := []Hit{}
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.DocID, &h.Body, &h.Hits); err != nil {
			return nil, fmt.Errorf("scan hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
