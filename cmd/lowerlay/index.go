package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hazyhaar/lowerlay/pkg/dict"
	"github.com/hazyhaar/lowerlay/pkg/index"
)

// cmdIndex runs `index put|search|delete`.
func cmdIndex(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New("usage: lowerlay index put|search|delete [--db path] args...")
	}
	sub := args[0]
	fs := flag.NewFlagSet("index "+sub, flag.ExitOnError)
	db := fs.String("db", "index.db", "path to the SQLite index")
	limit := fs.Int("limit", index.DefaultLimit, "maximum number of hits (search)")
	fs.Parse(args[1:])

	ix, err := index.Open(*db)
	if err != nil {
		return err
	}
	defer ix.Close()
	ctx := context.Background()

	switch sub {
	case "put":
		// put <id> [text...]; the body is read from stdin when no text is given
		if fs.NArg() < 1 {
			return errors.New("usage: lowerlay index put <id> [text...]")
		}
		body := strings.Join(fs.Args()[1:], " ")
		if body == "" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			body = string(data)
		}
		return ix.Put(ctx, fs.Arg(0), body)

	case "search":
		if fs.NArg() == 0 {
			return errors.New("usage: lowerlay index search <words...>")
		}
		hits, err := ix.Search(ctx, strings.Join(fs.Args(), " "), *limit)
		if err != nil {
			return err
		}
		for _, h := range hits {
			fmt.Fprintf(stdout, "%s\t%d\t%s\n", h.DocID, h.Hits, oneLine(h.Body))
		}
		return nil

	case "delete":
		for _, id := range fs.Args() {
			if err := ix.Delete(ctx, id); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown index command %q", sub)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cmdCompile precompiles each dictionary directory given with --dir or as
// an argument.
func cmdCompile(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	dir := fs.String("dir", "", "dictionary directory containing manifest.yaml")
	fs.Parse(args)

	dirs := fs.Args()
	if *dir != "" {
		dirs = append([]string{*dir}, dirs...)
	}
	if len(dirs) == 0 {
		return errors.New("usage: lowerlay compile --dir <dict dir> [dir...]")
	}
	for _, d := range dirs {
		n, err := dict.CompileCSV(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: %d entries -> data.gob\n", d, n)
	}
	return nil
}
