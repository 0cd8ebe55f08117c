// CLAUDE:SUMMARY Declarative import sources (sources.yaml): where a dictionary's CSV lives and how to read it.
package importer

import (
	"fmt"
	"os"
	"sort"

	"github.com/hazyhaar/lowerlay/pkg/dict"
	"gopkg.in/yaml.v3"
)

// Source declares a remote CSV, optionally inside a ZIP archive, that
// becomes the dictionary ID under the dictionaries directory.
type Source struct {
	ID          string                `yaml:"id"`
	URL         string                `yaml:"url"`
	Member      string                `yaml:"member,omitempty"` // CSV file inside a ZIP archive
	Description string                `yaml:"description,omitempty"`
	Language    string                `yaml:"language,omitempty"`
	License     string                `yaml:"license,omitempty"`
	Format      dict.FormatSpec       `yaml:"format"`
	Metadata    []dict.MetadataColumn `yaml:"metadata_columns,omitempty"`
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads a sources.yaml file. Sources are returned sorted by ID.
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources %s: %w", path, err)
	}
	var f sourcesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sources %s: %w", path, err)
	}

	seen := make(map[string]bool, len(f.Sources))
	for i, s := range f.Sources {
		switch {
		case s.ID == "":
			return nil, fmt.Errorf("sources %s: entry %d: missing id", path, i)
		case s.URL == "":
			return nil, fmt.Errorf("sources %s: %s: missing url", path, s.ID)
		case s.Format.KeyColumn == "":
			return nil, fmt.Errorf("sources %s: %s: missing format.key_column", path, s.ID)
		case seen[s.ID]:
			return nil, fmt.Errorf("sources %s: duplicate id %q", path, s.ID)
		}
		seen[s.ID] = true
	}
	sort.Slice(f.Sources, func(i, j int) bool { return f.Sources[i].ID < f.Sources[j].ID })
	return f.Sources, nil
}

// Find returns the source with the given ID.
func Find(sources []Source, id string) (Source, error) {
	for _, s := range sources {
		if s.ID == id {
			return s, nil
		}
	}
	return Source{}, fmt.Errorf("unknown import source: %q", id)
}
