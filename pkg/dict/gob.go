// CLAUDE:SUMMARY Gob cache of folded dictionary entries, tagged with the normalize mode it was built with.
package dict

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// gobFile is the on-disk layout of data.gob.
type gobFile struct {
	Normalize string
	Variant   string
	Entries   map[string]*Entry
}

// loadGob deserializes entries from a gob-encoded file into d.Entries.
// A cache built with another normalize mode or table variant is rejected:
// its keys would never match.
func (d *Dictionary) loadGob(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open gob file: %w", err)
	}
	defer f.Close()

	var gf gobFile
	if err := gob.NewDecoder(f).Decode(&gf); err != nil {
		return fmt.Errorf("decode gob: %w", err)
	}
	if gf.Normalize != d.Manifest.Format.Normalize || gf.Variant != tableVariant() {
		return fmt.Errorf("gob built with normalize=%s/%s, manifest wants %s/%s: recompile",
			gf.Normalize, gf.Variant, d.Manifest.Format.Normalize, tableVariant())
	}
	d.Entries = gf.Entries
	return nil
}

// SaveGob serializes entries, folded with the given normalize mode, to a
// gob-encoded file at path.
func SaveGob(entries map[string]*Entry, normalize, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gob file: %w", err)
	}
	defer f.Close()

	gf := gobFile{Normalize: normalize, Variant: tableVariant(), Entries: entries}
	if err := gob.NewEncoder(f).Encode(&gf); err != nil {
		return fmt.Errorf("encode gob: %w", err)
	}
	return nil
}

// CompileCSV reads the CSV data of the dictionary in dir and writes
// dir/data.gob next to it. It returns the number of entries written.
func CompileCSV(dir string) (int, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return 0, err
	}
	d := newDictionary(manifest)
	if err := d.loadCSV(filepath.Join(dir, manifest.DataFile)); err != nil {
		return 0, fmt.Errorf("dict %s: %w", manifest.ID, err)
	}
	if err := SaveGob(d.Entries, manifest.Format.Normalize, filepath.Join(dir, "data.gob")); err != nil {
		return 0, fmt.Errorf("dict %s: %w", manifest.ID, err)
	}
	return len(d.Entries), nil
}
