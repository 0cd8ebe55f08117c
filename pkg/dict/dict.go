package dict

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hazyhaar/lowerlay/pkg/lowerlay"
)

// Entry is a single term in a dictionary, with optional metadata.
type Entry struct {
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Dictionary is one loaded dictionary with its manifest and in-memory hashmap
// keyed by folded term.
type Dictionary struct {
	Manifest  *Manifest         `json:"manifest"`
	Entries   map[string]*Entry `json:"-"`
	normalize Normalizer
}

func newDictionary(m *Manifest) *Dictionary {
	return &Dictionary{
		Manifest:  m,
		Entries:   make(map[string]*Entry),
		normalize: GetNormalizer(m.Format.Normalize),
	}
}

// LoadDictionary reads a manifest.yaml and loads data from gob or csv.
func LoadDictionary(dir string) (*Dictionary, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}
	d := newDictionary(manifest)

	// Gob takes priority over CSV. An unreadable or stale cache falls back
	// to the CSV it was compiled from.
	gobPath := filepath.Join(dir, "data.gob")
	csvPath := filepath.Join(dir, manifest.DataFile)
	if _, err := os.Stat(gobPath); err == nil {
		gobErr := d.loadGob(gobPath)
		if gobErr == nil {
			return d, nil
		}
		if _, err := os.Stat(csvPath); err != nil {
			return nil, fmt.Errorf("dict %s: %w", manifest.ID, gobErr)
		}
		slog.Warn("ignoring data.gob, loading csv", "dict", manifest.ID, "error", gobErr)
		d.Entries = make(map[string]*Entry)
	}

	if err := d.loadCSV(csvPath); err != nil {
		return nil, fmt.Errorf("dict %s: %w", manifest.ID, err)
	}
	return d, nil
}

func (d *Dictionary) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	rows, err := newRowReader(f, d.Manifest.Format, d.Manifest.MetadataCols)
	if err != nil {
		return err
	}

	var collisions int
	for {
		term, meta, err := rows.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		key := d.normalize(term)
		if key == "" {
			continue
		}
		if _, exists := d.Entries[key]; exists {
			collisions++
		}
		d.Entries[key] = &Entry{Metadata: meta}
	}

	// Distinct spellings folding to the same key (Élodie, ELODIE) are
	// expected; the last row wins.
	if collisions > 0 {
		slog.Warn("key collisions after folding", "dict", d.Manifest.ID, "collisions", collisions)
	}
	return nil
}

// Lookup searches for a term in this dictionary after folding.
func (d *Dictionary) Lookup(term string) (*Entry, bool) {
	e, ok := d.Entries[d.normalize(term)]
	return e, ok
}

// NormalizeTerm applies this dictionary's normalizer to a term.
func (d *Dictionary) NormalizeTerm(term string) string {
	return d.normalize(term)
}

// tableVariant identifies the folding a cached dictionary was built with.
func tableVariant() string {
	if lowerlay.NormalizationEnabled {
		return lowerlay.Variant + "+nfc"
	}
	return lowerlay.Variant
}
