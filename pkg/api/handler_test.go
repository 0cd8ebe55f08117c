//go:build !lowerlay_ascii && !lowerlay_nonorm

package api

import (
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFold(t *testing.T) {
	h := NewRouter(testDeps(t, false))

	code, out := do(t, h, "GET", "/v1/fold/"+url.PathEscape("Comunicac\u0327o\u0303es"), "")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%v)", code, out)
	}
	want := map[string]any{
		"text":       "Comunicac\u0327o\u0303es",
		"folded":     "comunicacoes",
		"normalized": true,
		"chars_in":   float64(14),
		"chars_out":  float64(12),
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("fold mismatch (-want +got):\n%s", diff)
	}
}

func TestFoldRaw(t *testing.T) {
	h := NewRouter(testDeps(t, false))

	_, out := do(t, h, "GET", "/v1/fold/"+url.PathEscape("Comunicac\u0327o\u0303es")+"?raw=true", "")
	if out["folded"] != "comunicac\u0327o\u0303es" {
		t.Errorf("folded = %q, want combining marks kept", out["folded"])
	}
	if out["normalized"] != false {
		t.Errorf("normalized = %v, want false", out["normalized"])
	}
}

func TestFoldBatch(t *testing.T) {
	h := NewRouter(testDeps(t, false))

	code, out := do(t, h, "POST", "/v1/fold/batch", `{"texts":["ÉLODIE","São Paulo"]}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%v)", code, out)
	}
	results := out["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for i, want := range []string{"elodie", "sao paulo"} {
		if got := results[i].(map[string]any)["folded"]; got != want {
			t.Errorf("results[%d].folded = %q, want %q", i, got, want)
		}
	}
}

func TestMatch(t *testing.T) {
	h := NewRouter(testDeps(t, false))

	code, out := do(t, h, "GET", "/v1/match/JOAO", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if out["folded"] != "joao" {
		t.Errorf("folded = %v, want joao", out["folded"])
	}
	matches := out["matches"].([]any)
	if len(matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(matches))
	}

	_, out = do(t, h, "GET", "/v1/match/JOAO?languages=fr", "")
	if n := len(out["matches"].([]any)); n != 0 {
		t.Errorf("matches with languages=fr = %d, want 0", n)
	}
}

func TestSearch(t *testing.T) {
	h := NewRouter(testDeps(t, true))

	code, out := do(t, h, "GET", "/v1/search?q=COMUNICACOES", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d (%v)", code, out)
	}
	hits := out["hits"].([]any)
	if len(hits) != 1 || hits[0].(map[string]any)["doc_id"] != "doc-1" {
		t.Errorf("hits = %v, want doc-1", hits)
	}

	if code, _ := do(t, h, "GET", "/v1/search?q=x&limit=abc", ""); code != http.StatusBadRequest {
		t.Errorf("invalid limit: status = %d, want 400", code)
	}
	if code, _ := do(t, h, "GET", "/v1/search", ""); code != http.StatusBadRequest {
		t.Errorf("missing q: status = %d, want 400", code)
	}
}

func TestHealth(t *testing.T) {
	h := NewRouter(testDeps(t, true))

	code, out := do(t, h, "GET", "/v1/health", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	want := map[string]any{
		"status":        "ok",
		"variant":       "bmp",
		"table_size":    float64(0x10000),
		"normalization": true,
		"dictionaries":  float64(1),
		"total_entries": float64(2),
		"indexed_docs":  float64(1),
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("health mismatch (-want +got):\n%s", diff)
	}
}

func TestGzipLargeResponse(t *testing.T) {
	h := NewRouter(testDeps(t, false))

	texts := make([]string, MaxBatch)
	for i := range texts {
		texts[i] = "Comunicações Móveis de Portugal"
	}
	body, _ := json.Marshal(map[string]any{"texts": texts})
	req := httptest.NewRequest("POST", "/v1/fold/batch", strings.NewReader(string(body)))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	var out foldBatchResponse
	if err := json.NewDecoder(zr).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Results) != MaxBatch || out.Results[0].Folded != "comunicacoes moveis de portugal" {
		t.Errorf("results = %d, first = %+v", len(out.Results), out.Results[0])
	}
}
