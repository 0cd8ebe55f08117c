package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/hazyhaar/lowerlay/pkg/dict"
	"github.com/hazyhaar/lowerlay/pkg/kit"
	"github.com/hazyhaar/lowerlay/pkg/lowerlay"
	"github.com/jub0bs/cors"
	"github.com/klauspost/compress/gzhttp"
)

// NewRouter returns an http.Handler with all lowerlay API routes.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()
	h := &handler{eps: newEndpoints(deps), deps: deps}

	mux.HandleFunc("GET /v1/fold/batch", methodNotAllowed) // prevent GET on batch
	mux.HandleFunc("POST /v1/fold/batch", h.handleFoldBatch)
	mux.HandleFunc("GET /v1/fold/{text}", h.handleFold)
	mux.HandleFunc("GET /v1/match/{term}", h.handleMatch)
	mux.HandleFunc("GET /v1/search", h.handleSearch)
	mux.HandleFunc("GET /v1/dicts", h.handleListDicts)
	mux.HandleFunc("GET /v1/health", h.handleHealth)
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics.Handler())
	}

	return corsMiddleware.Wrap(gzhttp.GzipHandler(mux))
}

type handler struct {
	eps  *endpoints
	deps Deps
}

// --- fold single text ---

func (h *handler) handleFold(w http.ResponseWriter, r *http.Request) {
	text := r.PathValue("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing text")
		return
	}
	h.serve(w, r, h.eps.fold, &foldReq{Text: text, Raw: parseBool(r, "raw")}, http.StatusInternalServerError)
}

// --- fold batch ---

type httpBatchRequest struct {
	Texts []string `json:"texts"`
	Raw   bool     `json:"raw,omitempty"`
}

func (h *handler) handleFoldBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64 KiB max
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	h.serve(w, r, h.eps.foldBatch, &foldBatchReq{Texts: req.Texts, Raw: req.Raw}, http.StatusBadRequest)
}

// --- match ---

func (h *handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	term := r.PathValue("term")
	if term == "" {
		writeError(w, http.StatusBadRequest, "missing term")
		return
	}
	h.serve(w, r, h.eps.match, &matchReq{Term: term, Opts: parseOpts(r)}, http.StatusInternalServerError)
}

// --- search ---

func (h *handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "missing q")
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	h.serve(w, r, h.eps.search, &searchReq{Query: q, Limit: limit}, http.StatusInternalServerError)
}

// --- list dicts ---

func (h *handler) handleListDicts(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.eps.listDicts, nil, http.StatusInternalServerError)
}

// --- health ---

type healthResponse struct {
	Status        string `json:"status"`
	Variant       string `json:"variant"`
	TableSize     int    `json:"table_size"`
	Normalization bool   `json:"normalization"`
	Dictionaries  int    `json:"dictionaries"`
	TotalEntries  int    `json:"total_entries"`
	IndexedDocs   *int   `json:"indexed_docs,omitempty"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:        "ok",
		Variant:       lowerlay.Variant,
		TableSize:     lowerlay.TableSize,
		Normalization: lowerlay.NormalizationEnabled,
		Dictionaries:  h.deps.Registry.DictCount(),
		TotalEntries:  h.deps.Registry.TotalEntries(),
	}
	if h.deps.Index != nil {
		n, err := h.deps.Index.Count(r.Context())
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		resp.IndexedDocs = &n
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- helpers ---

// serve runs an endpoint and writes its response, or the error with
// failCode. ErrNoIndex is always reported as 503.
func (h *handler) serve(w http.ResponseWriter, r *http.Request, ep kit.Endpoint, req any, failCode int) {
	resp, err := ep(r.Context(), req)
	if err != nil {
		code := failCode
		if errors.Is(err, ErrNoIndex) {
			code = http.StatusServiceUnavailable
		}
		writeError(w, code, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseOpts(r *http.Request) *dict.MatchOptions {
	opts := &dict.MatchOptions{}
	if v := r.URL.Query().Get("languages"); v != "" {
		opts.Languages = strings.Split(v, ",")
	}
	if v := r.URL.Query().Get("dicts"); v != "" {
		opts.Dicts = strings.Split(v, ",")
	}
	return opts
}

func parseBool(r *http.Request, key string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(key))
	return b
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// corsMiddleware lets browser clients on any origin call the API. The API
// carries no credentials.
var corsMiddleware = func() *cors.Middleware {
	mw, err := cors.NewMiddleware(cors.Config{
		Origins:        []string{"*"},
		RequestHeaders: []string{"Content-Type"},
	})
	if err != nil {
		panic(err)
	}
	return mw
}()
