// CLAUDE:SUMMARY Registry of folded-term dictionaries: directory scan, hot reload, cross-dictionary matching.
package dict

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Registry holds all loaded dictionaries and serves match queries.
type Registry struct {
	mu       sync.RWMutex
	dicts    map[string]*Dictionary
	dictsDir string
}

// NewRegistry creates a new empty registry for the given directory.
func NewRegistry(dictsDir string) *Registry {
	return &Registry{
		dicts:    make(map[string]*Dictionary),
		dictsDir: dictsDir,
	}
}

// Load scans the dicts directory and loads every dictionary.
func (r *Registry) Load() error {
	entries, err := os.ReadDir(r.dictsDir)
	if err != nil {
		return fmt.Errorf("read dicts dir %s: %w", r.dictsDir, err)
	}

	newDicts := make(map[string]*Dictionary)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(r.dictsDir, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, "manifest.yaml")); err != nil {
			continue
		}
		d, err := LoadDictionary(dir)
		if err != nil {
			return fmt.Errorf("load dictionary %s: %w", entry.Name(), err)
		}
		if _, dup := newDicts[d.Manifest.ID]; dup {
			return fmt.Errorf("duplicate dictionary id %q in %s", d.Manifest.ID, dir)
		}
		newDicts[d.Manifest.ID] = d
	}

	r.mu.Lock()
	r.dicts = newDicts
	r.mu.Unlock()
	return nil
}

// Reload reloads all dictionaries from disk (hot reload).
func (r *Registry) Reload() error {
	return r.Load()
}

// Dir returns the directory the registry loads from.
func (r *Registry) Dir() string {
	return r.dictsDir
}

// Match is a single dictionary hit for a term.
type Match struct {
	DictID   string            `json:"dict_id"`
	Language string            `json:"language,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// MatchResult is the response for a single term.
type MatchResult struct {
	Term    string  `json:"term"`
	Folded  string  `json:"folded"`
	Matches []Match `json:"matches"`
}

// MatchOptions are optional filters for Match.
type MatchOptions struct {
	Languages []string
	Dicts     []string
}

// Match looks up a term across all (or filtered) dictionaries.
// Dictionaries are iterated in sorted ID order for deterministic results.
func (r *Registry) Match(term string, opts *MatchOptions) *MatchResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := &MatchResult{
		Term:    term,
		Matches: []Match{},
	}

	ids := make([]string, 0, len(r.dicts))
	for id := range r.dicts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		d := r.dicts[id]
		if opts != nil {
			if len(opts.Languages) > 0 && !contains(opts.Languages, d.Manifest.Language) {
				continue
			}
			if len(opts.Dicts) > 0 && !contains(opts.Dicts, d.Manifest.ID) {
				continue
			}
		}

		entry, ok := d.Lookup(term)
		if !ok {
			continue
		}

		// The first matching dictionary's fold is reported.
		if result.Folded == "" {
			result.Folded = d.NormalizeTerm(term)
		}
		result.Matches = append(result.Matches, Match{
			DictID:   d.Manifest.ID,
			Language: d.Manifest.Language,
			Metadata: entry.Metadata,
		})
	}

	if result.Folded == "" {
		result.Folded = NormalizeLowerLay(term)
	}
	return result
}

// DictInfo is the public metadata for a loaded dictionary.
type DictInfo struct {
	ID        string `json:"id"`
	Version   string `json:"version"`
	Language  string `json:"language,omitempty"`
	Normalize string `json:"normalize"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url,omitempty"`
	License   string `json:"license"`
	Entries   int    `json:"entries"`
}

// ListDicts returns metadata for all loaded dictionaries, sorted by ID.
func (r *Registry) ListDicts() []DictInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]DictInfo, 0, len(r.dicts))
	for _, d := range r.dicts {
		infos = append(infos, DictInfo{
			ID:        d.Manifest.ID,
			Version:   d.Manifest.Version,
			Language:  d.Manifest.Language,
			Normalize: d.Manifest.Format.Normalize,
			Source:    d.Manifest.Source,
			SourceURL: d.Manifest.SourceURL,
			License:   d.Manifest.License,
			Entries:   len(d.Entries),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// DictCount returns the number of loaded dictionaries.
func (r *Registry) DictCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.dicts)
}

// TotalEntries returns the total number of entries across all dictionaries.
func (r *Registry) TotalEntries() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, d := range r.dicts {
		total += len(d.Entries)
	}
	return total
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
