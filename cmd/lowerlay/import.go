// CLAUDE:SUMMARY CLI subcommand that downloads the dictionaries declared in sources.yaml and checks their URLs.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hazyhaar/lowerlay/pkg/importer"
)

func cmdImport(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	sourcesPath := fs.String("sources", "sources.yaml", "path to the sources file")
	dictsDir := fs.String("dicts-dir", "dicts", "dictionaries directory")
	dbPath := fs.String("db", "", "import bookkeeping database (default <dicts-dir>/sources.db)")
	source := fs.String("source", "", "import one source by id")
	all := fs.Bool("all", false, "import every source")
	check := fs.Bool("check", false, "only check that source URLs answer")
	fs.Parse(args)

	srcs, err := importer.LoadSources(*sourcesPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*dictsDir, 0o755); err != nil {
		return err
	}
	if *dbPath == "" {
		*dbPath = filepath.Join(*dictsDir, "sources.db")
	}
	sdb, err := importer.OpenSourceDB(*dbPath)
	if err != nil {
		return err
	}
	defer sdb.Close()
	if err := sdb.Sync(srcs); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	switch {
	case *check:
		_, failed, err := importer.NewChecker(sdb, nil).CheckAll(ctx)
		if err != nil {
			return err
		}
		if err := listSources(sdb, stdout); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d sources unavailable", failed)
		}
		return nil

	case *all:
		var failed int
		for _, src := range srcs {
			if importOne(ctx, sdb, src, *dictsDir, stdout) != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d imports failed", failed, len(srcs))
		}
		return nil

	case *source != "":
		src, err := importer.Find(srcs, *source)
		if err != nil {
			return err
		}
		return importOne(ctx, sdb, src, *dictsDir, stdout)
	}
	return listSources(sdb, stdout)
}

func importOne(ctx context.Context, sdb *importer.SourceDB, src importer.Source, dictsDir string, stdout io.Writer) error {
	fmt.Fprintf(stdout, "[%s] importing %s\n", src.ID, src.URL)
	n, err := importer.Import(ctx, src, dictsDir)
	if recErr := sdb.RecordImport(src.ID, n, err); recErr != nil {
		return recErr
	}
	if err != nil {
		fmt.Fprintf(stdout, "[%s] FAILED: %v\n", src.ID, err)
		return err
	}
	fmt.Fprintf(stdout, "[%s] OK, %d entries -> %s/\n", src.ID, n, filepath.Join(dictsDir, src.ID))
	return nil
}

func listSources(sdb *importer.SourceDB, stdout io.Writer) error {
	recs, err := sdb.ListSources()
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		status := "-"
		if r.LastStatus != nil {
			status = fmt.Sprint(*r.LastStatus)
		}
		entries := "-"
		if r.LastEntries != nil {
			entries = fmt.Sprint(*r.LastEntries)
		}
		rows = append(rows, []string{r.ID, status, entries, r.URL})
	}
	return renderTable(stdout, []string{"id", "status", "entries", "url"}, rows)
}
