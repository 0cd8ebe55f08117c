// Command lowerlay folds text to lowercase without diacritics, serves the
// folding, dictionary and search API, and manages the search index.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hazyhaar/lowerlay/pkg/lowerlay"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "fold":
		err = cmdFold(args, os.Stdin, os.Stdout)
	case "serve":
		err = cmdServe(args)
	case "mcp":
		err = cmdMCP(args)
	case "index":
		err = cmdIndex(args, os.Stdin, os.Stdout)
	case "compile":
		err = cmdCompile(args, os.Stdout)
	case "dicts":
		err = cmdDicts(args, os.Stdout)
	case "import":
		err = cmdImport(args, os.Stdout)
	case "call":
		err = cmdCall(args, os.Stdout)
	case "version":
		cmdVersion(os.Stdout)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "lowerlay %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: lowerlay <command> [flags]

Commands:
  fold      Fold arguments, or stdin when none are given
  serve     Start the HTTP server (or the TLS/QUIC chassis)
  mcp       Serve the MCP tools on stdin/stdout
  index     Manage the search index: put, search, delete
  compile   Precompile dictionary CSV files to data.gob
  dicts     List the dictionaries of a dictionaries directory
  import    Download the dictionaries declared in sources.yaml
  call      Call an MCP tool over QUIC
  version   Print the folding table compiled into this binary
`)
}

func cmdVersion(w io.Writer) {
	fmt.Fprintf(w, "lowerlay %s variant=%s table_size=0x%x normalization=%t\n",
		version, lowerlay.Variant, lowerlay.TableSize, lowerlay.NormalizationEnabled)
}
