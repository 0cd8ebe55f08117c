package api

import (
	"fmt"
	"strings"

	"github.com/hazyhaar/lowerlay/pkg/dict"
	"github.com/hazyhaar/lowerlay/pkg/kit"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMCPTools registers the lowerlay MCP tools on the server. The
// tools share their endpoints with the HTTP routes.
func RegisterMCPTools(srv *server.MCPServer, deps Deps) {
	eps := newEndpoints(deps)

	kit.RegisterMCPTool(srv, mcp.NewTool("fold_text",
		mcp.WithDescription("Lowercase a text and strip its diacritics, one character at a time (Comunicações -> comunicacoes)."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to fold")),
		mcp.WithBoolean("raw", mcp.Description("Skip Unicode normalization (text must already be NFC)")),
	), eps.fold, func(req mcp.CallToolRequest) (any, error) {
		args := req.GetArguments()
		text, _ := args["text"].(string)
		raw, _ := args["raw"].(bool)
		return &foldReq{Text: text, Raw: raw}, nil
	})

	kit.RegisterMCPTool(srv, mcp.NewTool("fold_batch",
		mcp.WithDescription(fmt.Sprintf("Fold up to %d texts.", MaxBatch)),
		mcp.WithArray("texts", mcp.Required(), mcp.Description("Texts to fold"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithBoolean("raw", mcp.Description("Skip Unicode normalization")),
	), eps.foldBatch, func(req mcp.CallToolRequest) (any, error) {
		args := req.GetArguments()
		texts, err := stringList(args["texts"])
		if err != nil {
			return nil, fmt.Errorf("texts: %w", err)
		}
		raw, _ := args["raw"].(bool)
		return &foldBatchReq{Texts: texts, Raw: raw}, nil
	})

	kit.RegisterMCPTool(srv, mcp.NewTool("match_term",
		mcp.WithDescription("Look up a term in the loaded dictionaries, comparing folded forms."),
		mcp.WithString("term", mcp.Required(), mcp.Description("The term to match")),
		mcp.WithString("languages", mcp.Description("Comma-separated language filter (e.g. fr,pt)")),
		mcp.WithString("dicts", mcp.Description("Comma-separated dictionary filter")),
	), eps.match, func(req mcp.CallToolRequest) (any, error) {
		args := req.GetArguments()
		term, _ := args["term"].(string)
		opts := &dict.MatchOptions{}
		if v, _ := args["languages"].(string); v != "" {
			opts.Languages = strings.Split(v, ",")
		}
		if v, _ := args["dicts"].(string); v != "" {
			opts.Dicts = strings.Split(v, ",")
		}
		return &matchReq{Term: term, Opts: opts}, nil
	})

	kit.RegisterMCPTool(srv, mcp.NewTool("search_index",
		mcp.WithDescription("Search indexed documents; every query word must match, accents and case ignored."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Words to search for")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of hits (default 20)")),
	), eps.search, func(req mcp.CallToolRequest) (any, error) {
		args := req.GetArguments()
		query, _ := args["query"].(string)
		limit, _ := args["limit"].(float64)
		return &searchReq{Query: query, Limit: int(limit)}, nil
	})

	kit.RegisterMCPTool(srv, mcp.NewTool("list_dicts",
		mcp.WithDescription("List all loaded dictionaries with metadata (language, normalize mode, entry count, source)."),
	), eps.listDicts, func(mcp.CallToolRequest) (any, error) {
		return nil, nil
	})
}

// stringList accepts a JSON array of strings or a comma-separated string.
func stringList(v any) ([]string, error) {
	switch v := v.(type) {
	case []any:
		out := make([]string, len(v))
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T, want string", i, e)
			}
			out[i] = s
		}
		return out, nil
	case []string:
		return v, nil
	case string:
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("got %T, want array of strings", v)
	}
}
