package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/hazyhaar/lowerlay/pkg/dict"
	"github.com/hazyhaar/lowerlay/pkg/index"
	"github.com/hazyhaar/lowerlay/pkg/kit"
	"github.com/hazyhaar/lowerlay/pkg/lowerlay"
)

// MaxBatch is the largest number of texts a batch call accepts.
const MaxBatch = 100

// ErrNoIndex is returned by search when the server runs without an index.
var ErrNoIndex = errors.New("search index not configured")

// Deps are the backends the API serves. Index and Metrics may be nil.
type Deps struct {
	Registry *dict.Registry
	Index    *index.Index
	Logger   *slog.Logger
	Metrics  *kit.Metrics
}

// Shared request/response types used by both HTTP and MCP transports.

type foldReq struct {
	Text string
	Raw  bool
}

type foldBatchReq struct {
	Texts []string
	Raw   bool
}

type matchReq struct {
	Term string
	Opts *dict.MatchOptions
}

type searchReq struct {
	Query string
	Limit int
}

// FoldResult is the response for one folded text.
type FoldResult struct {
	Text       string `json:"text"`
	Folded     string `json:"folded"`
	Normalized bool   `json:"normalized"`
	CharsIn    int    `json:"chars_in"`
	CharsOut   int    `json:"chars_out"`
}

type foldBatchResponse struct {
	Results []FoldResult `json:"results"`
}

type searchResponse struct {
	Query string      `json:"query"`
	Hits  []index.Hit `json:"hits"`
}

type dictsResponse struct {
	Dictionaries []dict.DictInfo `json:"dictionaries"`
}

// endpoints are the kit.Endpoints behind every route and tool.
type endpoints struct {
	fold      kit.Endpoint
	foldBatch kit.Endpoint
	match     kit.Endpoint
	search    kit.Endpoint
	listDicts kit.Endpoint
}

func newEndpoints(deps Deps) *endpoints {
	wrap := func(name string, ep kit.Endpoint) kit.Endpoint {
		return kit.Chain(kit.RequestID(), kit.Logging(deps.Logger, name), deps.Metrics.Middleware(name))(ep)
	}
	return &endpoints{
		fold:      wrap("fold", foldEndpoint()),
		foldBatch: wrap("fold_batch", foldBatchEndpoint()),
		match:     wrap("match", matchEndpoint(deps.Registry)),
		search:    wrap("search", searchEndpoint(deps.Index)),
		listDicts: wrap("list_dicts", listDictsEndpoint(deps.Registry)),
	}
}

func foldText(text string, raw bool) FoldResult {
	var folded string
	if raw {
		folded = lowerlay.LowerLayString(text)
	} else {
		folded = lowerlay.Fold(text)
	}
	return FoldResult{
		Text:       text,
		Folded:     folded,
		Normalized: !raw && lowerlay.NormalizationEnabled,
		CharsIn:    utf8.RuneCountInString(text),
		CharsOut:   utf8.RuneCountInString(folded),
	}
}

func foldEndpoint() kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*foldReq)
		return foldText(req.Text, req.Raw), nil
	}
}

func foldBatchEndpoint() kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*foldBatchReq)
		if len(req.Texts) == 0 {
			return nil, fmt.Errorf("texts array is empty")
		}
		if len(req.Texts) > MaxBatch {
			return nil, fmt.Errorf("too many texts (max %d, got %d)", MaxBatch, len(req.Texts))
		}
		results := make([]FoldResult, len(req.Texts))
		for i, text := range req.Texts {
			results[i] = foldText(text, req.Raw)
		}
		return foldBatchResponse{Results: results}, nil
	}
}

func matchEndpoint(reg *dict.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*matchReq)
		return reg.Match(req.Term, req.Opts), nil
	}
}

func searchEndpoint(ix *index.Index) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		if ix == nil {
			return nil, ErrNoIndex
		}
		req := request.(*searchReq)
		hits, err := ix.Search(ctx, req.Query, req.Limit)
		if err != nil {
			return nil, err
		}
		return searchResponse{Query: req.Query, Hits: hits}, nil
	}
}

func listDictsEndpoint(reg *dict.Registry) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return dictsResponse{Dictionaries: reg.ListDicts()}, nil
	}
}
