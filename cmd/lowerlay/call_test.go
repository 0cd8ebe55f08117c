package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseToolArgs(t *testing.T) {
	got, err := parseToolArgs([]string{
		"text=São Paulo",
		"raw=true",
		"limit=5",
		`texts=["a","b"]`,
		"query=null",
		"empty=",
		"expr=a=b",
	})
	if err != nil {
		t.Fatalf("parseToolArgs: %v", err)
	}
	want := map[string]any{
		"text":  "São Paulo",
		"raw":   true,
		"limit": float64(5),
		"texts": []any{"a", "b"},
		"query": "null",
		"empty": "",
		"expr":  "a=b",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestParseToolArgsErrors(t *testing.T) {
	for _, in := range []string{"novalue", "=x"} {
		if _, err := parseToolArgs([]string{in}); err == nil {
			t.Errorf("parseToolArgs(%q): expected error", in)
		}
	}
}
