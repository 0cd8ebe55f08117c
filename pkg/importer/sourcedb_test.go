package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tempSourceDB(t *testing.T) *SourceDB {
	t.Helper()
	sdb, err := OpenSourceDB(filepath.Join(t.TempDir(), "sources.db"))
	if err != nil {
		t.Fatalf("OpenSourceDB: %v", err)
	}
	t.Cleanup(func() { sdb.Close() })
	return sdb
}

func TestOpenSourceDB_CreatesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	sdb, err := OpenSourceDB(path)
	if err != nil {
		t.Fatalf("OpenSourceDB: %v", err)
	}
	defer sdb.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("db file not created: %v", err)
	}
	recs, err := sdb.ListSources()
	if err != nil {
		t.Fatalf("ListSources on empty db: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected 0 sources, got %d", len(recs))
	}
}

func TestSync(t *testing.T) {
	sdb := tempSourceDB(t)

	if err := sdb.Sync([]Source{
		{ID: "z-last", URL: "https://example.com/z", License: "CC0"},
		{ID: "a-first", URL: "https://example.com/a", License: "MIT"},
	}); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if err := sdb.UpdateCheck("a-first", 200, ""); err != nil {
		t.Fatalf("UpdateCheck: %v", err)
	}

	// the declared URL wins, history survives
	if err := sdb.Sync([]Source{{ID: "a-first", URL: "https://example.com/a2"}}); err != nil {
		t.Fatalf("Sync again: %v", err)
	}

	recs, err := sdb.ListSources()
	if err != nil {
		t.Fatalf("ListSources: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != "a-first" {
		t.Fatalf("ListSources = %+v, want a-first first", recs)
	}
	if recs[0].URL != "https://example.com/a2" {
		t.Errorf("url = %s, want the re-declared one", recs[0].URL)
	}
	if recs[0].LastStatus == nil || *recs[0].LastStatus != 200 {
		t.Errorf("last_status lost on sync: %v", recs[0].LastStatus)
	}
}

func TestRecordImport(t *testing.T) {
	sdb := tempSourceDB(t)
	sdb.Sync([]Source{{ID: "cores", URL: "https://example.com/cores.csv"}})

	if err := sdb.RecordImport("cores", 42, nil); err != nil {
		t.Fatalf("RecordImport: %v", err)
	}
	if err := sdb.RecordImport("cores", 0, errors.New("HTTP 503")); err != nil {
		t.Fatalf("RecordImport with error: %v", err)
	}

	recs, _ := sdb.ListSources()
	r := recs[0]
	if r.LastEntries == nil || *r.LastEntries != 42 {
		t.Errorf("last_entries = %v, want 42 kept after a failed import", r.LastEntries)
	}
	if r.LastError == nil || *r.LastError != "HTTP 503" {
		t.Errorf("last_error = %v, want HTTP 503", r.LastError)
	}
	if r.LastImport == nil || *r.LastImport == 0 {
		t.Error("last_import not set")
	}
}

func TestUpdateCheck(t *testing.T) {
	sdb := tempSourceDB(t)
	sdb.Sync([]Source{{ID: "a1", URL: "https://example.com/a1"}})

	if err := sdb.UpdateCheck("a1", 200, ""); err != nil {
		t.Fatalf("UpdateCheck: %v", err)
	}
	recs, _ := sdb.ListSources()
	if r := recs[0]; r.LastStatus == nil || *r.LastStatus != 200 || r.LastError != nil {
		t.Fatalf("after 200: status=%v error=%v", r.LastStatus, r.LastError)
	}

	if err := sdb.UpdateCheck("a1", 404, "not found"); err != nil {
		t.Fatalf("UpdateCheck with error: %v", err)
	}
	recs, _ = sdb.ListSources()
	if r := recs[0]; r.LastStatus == nil || *r.LastStatus != 404 || r.LastError == nil || *r.LastError != "not found" {
		t.Fatalf("after 404: status=%v error=%v", r.LastStatus, r.LastError)
	}
}
