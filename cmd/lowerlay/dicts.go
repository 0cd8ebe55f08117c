package main

import (
	"flag"
	"io"
	"strconv"

	"github.com/hazyhaar/lowerlay/pkg/dict"
)

// cmdDicts lists the dictionaries found under the dictionaries directory.
func cmdDicts(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("dicts", flag.ExitOnError)
	dir := fs.String("dir", "dicts", "dictionaries directory")
	fs.Parse(args)

	reg := dict.NewRegistry(*dir)
	if err := reg.Load(); err != nil {
		return err
	}
	var rows [][]string
	for _, d := range reg.ListDicts() {
		rows = append(rows, []string{d.ID, d.Language, d.Version, d.Normalize, strconv.Itoa(d.Entries), d.License})
	}
	return renderTable(stdout, []string{"id", "language", "version", "normalize", "entries", "license"}, rows)
}
