// CLAUDE:SUMMARY Downloads a declared source into the dictionaries directory and precompiles it to data.gob.
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hazyhaar/lowerlay/pkg/dict"
)

// Import downloads src into dictsDir/<src.ID>/ as data.csv, writes its
// manifest and compiles data.gob. It returns the number of entries.
// The dictionary directory is only touched once the download succeeded.
func Import(ctx context.Context, src Source, dictsDir string) (int, error) {
	dlDir, err := os.MkdirTemp(dictsDir, ".download-")
	if err != nil {
		return 0, err
	}
	defer os.RemoveAll(dlDir)

	archive := filepath.Join(dlDir, "source")
	if err := downloadFile(ctx, src.URL, archive); err != nil {
		return 0, fmt.Errorf("%s: %w", src.ID, err)
	}

	csvPath := archive
	if isZip(archive) {
		csvPath, err = extractMember(archive, dlDir, src.Member)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", src.ID, err)
		}
	}

	dictDir := filepath.Join(dictsDir, src.ID)
	if err := ensureDir(dictDir); err != nil {
		return 0, err
	}
	if err := os.Rename(csvPath, filepath.Join(dictDir, "data.csv")); err != nil {
		return 0, fmt.Errorf("%s: install data.csv: %w", src.ID, err)
	}
	// a stale data.gob would shadow the new CSV if compilation fails
	os.Remove(filepath.Join(dictDir, "data.gob"))

	if err := writeManifest(dictDir, &dict.Manifest{
		ID:           src.ID,
		Language:     src.Language,
		Source:       src.Description,
		SourceURL:    src.URL,
		License:      src.License,
		DataFile:     "data.csv",
		Format:       src.Format,
		MetadataCols: src.Metadata,
	}); err != nil {
		return 0, err
	}
	return dict.CompileCSV(dictDir)
}

// extractMember unzips archive and returns the path of member, or of the
// only .csv file when member is empty.
func extractMember(archive, destDir, member string) (string, error) {
	files, err := unzipFile(archive, destDir)
	if err != nil {
		return "", fmt.Errorf("unzip: %w", err)
	}
	var csvs []string
	for _, f := range files {
		base := filepath.Base(f)
		if member != "" && base == filepath.Base(member) {
			return f, nil
		}
		if strings.EqualFold(filepath.Ext(base), ".csv") {
			csvs = append(csvs, f)
		}
	}
	if member != "" {
		return "", fmt.Errorf("archive has no member %q", member)
	}
	if len(csvs) != 1 {
		return "", fmt.Errorf("archive has %d .csv files, set member", len(csvs))
	}
	return csvs[0], nil
}
