package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/hazyhaar/lowerlay/pkg/lowerlay"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

func cmdFold(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("fold", flag.ExitOnError)
	raw := fs.Bool("raw", false, "skip normalization (input must already be NFC)")
	fs.Parse(args)

	if fs.NArg() > 0 {
		for _, text := range fs.Args() {
			if *raw {
				fmt.Fprintln(stdout, lowerlay.LowerLayString(text))
			} else {
				fmt.Fprintln(stdout, lowerlay.Fold(text))
			}
		}
		return nil
	}

	var t transform.Transformer = runes.Map(lowerlay.LowerLayChar)
	if !*raw {
		t = lowerlay.Transformer()
	}
	if _, err := io.Copy(stdout, transform.NewReader(stdin, t)); err != nil {
		return fmt.Errorf("fold stdin: %w", err)
	}
	return nil
}
