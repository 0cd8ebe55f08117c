package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hazyhaar/lowerlay/pkg/mcpquic"
	"github.com/mark3labs/mcp-go/mcp"
)

// cmdCall calls one MCP tool over QUIC, or lists the tools when none is
// named.
func cmdCall(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("call", flag.ExitOnError)
	addr := fs.String("addr", "localhost:8420", "chassis address")
	insecure := fs.Bool("insecure", true, "skip certificate verification")
	timeout := fs.Duration("timeout", 30*time.Second, "overall timeout")
	fs.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c, err := mcpquic.Dial(ctx, *addr, mcpquic.ClientTLSConfig(*insecure))
	if err != nil {
		return err
	}
	defer c.Close()

	if fs.NArg() == 0 {
		res, err := c.ListTools(ctx)
		if err != nil {
			return err
		}
		for _, t := range res.Tools {
			fmt.Fprintf(stdout, "%-14s %s\n", t.Name, t.Description)
		}
		return nil
	}

	tool := fs.Arg(0)
	toolArgs, err := parseToolArgs(fs.Args()[1:])
	if err != nil {
		return err
	}
	res, err := c.CallTool(ctx, tool, toolArgs)
	if err != nil {
		return err
	}
	text := resultText(res)
	if res.IsError {
		return fmt.Errorf("%s: %s", tool, text)
	}
	fmt.Fprintln(stdout, text)
	return nil
}

// parseToolArgs turns key=value pairs into tool arguments. Values that parse
// as JSON keep their JSON type; anything else is a string.
func parseToolArgs(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("argument %q: want key=value", p)
		}
		var x any
		if err := json.Unmarshal([]byte(v), &x); err == nil && x != nil {
			args[k] = x
		} else {
			args[k] = v
		}
	}
	return args, nil
}

func resultText(res *mcp.CallToolResult) string {
	var parts []string
	for _, c := range res.Content {
		switch tc := c.(type) {
		case mcp.TextContent:
			parts = append(parts, tc.Text)
		case *mcp.TextContent:
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
