package dict

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveGobLoadGobRoundTrip(t *testing.T) {
	entries := map[string]*Entry{
		"dupont": {Metadata: map[string]string{"freq": "1200", "rank": "5"}},
		"martin": {Metadata: map[string]string{"freq": "3500"}},
		"empty":  {},
	}

	path := filepath.Join(t.TempDir(), "data.gob")
	if err := SaveGob(entries, ModeLowerLay, path); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}

	d := newDictionary(&Manifest{ID: "rt", Format: FormatSpec{Normalize: ModeLowerLay}})
	if err := d.loadGob(path); err != nil {
		t.Fatalf("loadGob: %v", err)
	}

	if len(d.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(d.Entries))
	}
	if d.Entries["dupont"].Metadata["freq"] != "1200" {
		t.Errorf("dupont freq = %q, want 1200", d.Entries["dupont"].Metadata["freq"])
	}
	if d.Entries["dupont"].Metadata["rank"] != "5" {
		t.Errorf("dupont rank = %q, want 5", d.Entries["dupont"].Metadata["rank"])
	}
	if d.Entries["martin"].Metadata["freq"] != "3500" {
		t.Errorf("martin freq = %q, want 3500", d.Entries["martin"].Metadata["freq"])
	}
	if len(d.Entries["empty"].Metadata) != 0 {
		t.Errorf("empty metadata should be nil or empty, got %v", d.Entries["empty"].Metadata)
	}
}

func TestLoadGob_ModeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.gob")
	if err := SaveGob(map[string]*Entry{"x": {}}, ModeNone, path); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}

	d := newDictionary(&Manifest{ID: "mm", Format: FormatSpec{Normalize: ModeLowerLay}})
	if err := d.loadGob(path); err == nil {
		t.Error("expected error loading a gob built with another normalize mode")
	}
}

func TestCompileCSV(t *testing.T) {
	dictDir := filepath.Join(t.TempDir(), "compiled")
	os.MkdirAll(dictDir, 0o755)
	os.WriteFile(filepath.Join(dictDir, "manifest.yaml"), []byte(`id: compiled
format:
  has_header: true
  key_column: name
`), 0o644)
	os.WriteFile(filepath.Join(dictDir, "data.csv"), []byte("name\nDUPONT\nMARTIN\n"), 0o644)

	n, err := CompileCSV(dictDir)
	if err != nil {
		t.Fatalf("CompileCSV: %v", err)
	}
	if n != 2 {
		t.Errorf("CompileCSV = %d entries, want 2", n)
	}

	// Remove the CSV: the dictionary must now load from data.gob alone.
	os.Remove(filepath.Join(dictDir, "data.csv"))
	d, err := LoadDictionary(dictDir)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	if _, ok := d.Lookup("Dupont"); !ok {
		t.Error("expected Dupont to be found in the compiled dictionary")
	}
}

func TestLoadDictionary_PrefersGob(t *testing.T) {
	dictDir := filepath.Join(t.TempDir(), "gob-pref")
	os.MkdirAll(dictDir, 0o755)
	os.WriteFile(filepath.Join(dictDir, "manifest.yaml"), []byte("id: gob-pref\n"), 0o644)
	os.WriteFile(filepath.Join(dictDir, "data.csv"), []byte("DUPONT\n"), 0o644)

	gobEntries := map[string]*Entry{
		"gobonly": {Metadata: map[string]string{"src": "gob"}},
	}
	if err := SaveGob(gobEntries, ModeLowerLay, filepath.Join(dictDir, "data.gob")); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}

	d, err := LoadDictionary(dictDir)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	if _, ok := d.Entries["gobonly"]; !ok {
		t.Error("expected key 'gobonly' from gob file")
	}
	if _, ok := d.Entries["dupont"]; ok {
		t.Error("key 'dupont' should not exist, gob takes priority over csv")
	}
}

func TestLoadGob_FileNotFound(t *testing.T) {
	d := newDictionary(&Manifest{ID: "nf"})
	if err := d.loadGob("/nonexistent/path/data.gob"); err == nil {
		t.Error("expected error for nonexistent gob file")
	}
}

func TestSaveGob_InvalidPath(t *testing.T) {
	if err := SaveGob(map[string]*Entry{}, ModeLowerLay, "/nonexistent/dir/data.gob"); err == nil {
		t.Error("expected error for invalid path")
	}
}

func TestLoadDictionary_StaleGobFallsBackToCSV(t *testing.T) {
	dicts := t.TempDir()
	dictDir := filepath.Join(dicts, "stale")
	os.MkdirAll(dictDir, 0o755)
	os.WriteFile(filepath.Join(dictDir, "manifest.yaml"), []byte("id: stale\n"), 0o644)
	os.WriteFile(filepath.Join(dictDir, "data.csv"), []byte("DUPONT\n"), 0o644)

	// Built with another normalize mode than the manifest's lower_lay.
	if err := SaveGob(map[string]*Entry{"gobonly": {}}, ModeNone, filepath.Join(dictDir, "data.gob")); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}

	d, err := LoadDictionary(dictDir)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	if _, ok := d.Entries["dupont"]; !ok {
		t.Error("expected key 'dupont' from csv fallback")
	}
	if _, ok := d.Entries["gobonly"]; ok {
		t.Error("key 'gobonly' from the stale gob should be ignored")
	}

	reg := NewRegistry(dicts)
	if err := reg.Load(); err != nil {
		t.Fatalf("Registry.Load with stale gob: %v", err)
	}
	if reg.DictCount() != 1 || reg.TotalEntries() != 1 {
		t.Errorf("registry = %d dicts, %d entries; want 1, 1", reg.DictCount(), reg.TotalEntries())
	}
}

func TestLoadDictionary_StaleGobWithoutCSV(t *testing.T) {
	dictDir := filepath.Join(t.TempDir(), "stale-only")
	os.MkdirAll(dictDir, 0o755)
	os.WriteFile(filepath.Join(dictDir, "manifest.yaml"), []byte("id: stale-only\n"), 0o644)
	if err := SaveGob(map[string]*Entry{"x": {}}, ModeNone, filepath.Join(dictDir, "data.gob")); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}
	if _, err := LoadDictionary(dictDir); err == nil || !strings.Contains(err.Error(), "recompile") {
		t.Errorf("err = %v, want the gob mismatch error", err)
	}
}
