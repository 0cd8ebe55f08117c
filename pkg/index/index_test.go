package index

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func tempIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { ix.Close() })
	return ix
}

func TestPutEmptyID(t *testing.T) {
	ix := tempIndex(t)
	if err := ix.Put(context.Background(), "", "body"); !errors.Is(err, ErrEmptyDocID) {
		t.Errorf("Put empty id = %v, want ErrEmptyDocID", err)
	}
}

func TestSearchASCII(t *testing.T) {
	ix := tempIndex(t)
	ctx := context.Background()
	for id, body := range map[string]string{
		"a": "Lisboa PORTO Lisboa",
		"b": "porto faro",
		"c": "Braga",
	} {
		if err := ix.Put(ctx, id, body); err != nil {
			t.Fatalf("Put(%s): %v", id, err)
		}
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"PORTO", []string{"a", "b"}},
		{"lisboa porto", []string{"a"}},
		{"porto FARO", []string{"b"}},
		{"coimbra", nil},
		{"", nil},
		{" ,; ", nil},
	}
	for _, tt := range tests {
		hits, err := ix.Search(ctx, tt.query, 0)
		if err != nil {
			t.Fatalf("Search(%q): %v", tt.query, err)
		}
		var got []string
		for _, h := range hits {
			got = append(got, h.DocID)
		}
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
		}
	}
}

func TestSearchDefaultLimit(t *testing.T) {
	ix := tempIndex(t)
	ctx := context.Background()
	for i := 0; i < DefaultLimit+5; i++ {
		if err := ix.Put(ctx, fmt.Sprintf("doc-%02d", i), "Faro"); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	for _, tt := range []struct{ limit, want int }{
		{0, DefaultLimit},
		{-3, DefaultLimit},
		{5, 5},
		{100, DefaultLimit + 5},
	} {
		hits, err := ix.Search(ctx, "faro", tt.limit)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(hits) != tt.want {
			t.Errorf("Search(faro, %d) = %d hits, want %d", tt.limit, len(hits), tt.want)
		}
	}
}

func TestPutReplacesAndDelete(t *testing.T) {
	ix := tempIndex(t)
	ctx := context.Background()

	if err := ix.Put(ctx, "doc", "Lisboa"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := ix.Put(ctx, "doc", "Braga"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if hits, _ := ix.Search(ctx, "lisboa", 0); len(hits) != 0 {
		t.Errorf("Search(lisboa) = %v after replace, want none", hits)
	}
	if n, _ := ix.Count(ctx); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}

	if err := ix.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
	if err := ix.Delete(ctx, "doc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n, _ := ix.Count(ctx); n != 0 {
		t.Errorf("Count after delete = %d, want 0", n)
	}
}

func TestTokenizeASCII(t *testing.T) {
	got := Tokenize("Rua 25, de Abril!")
	want := []string{"Rua", "25", "de", "Abril"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}
