package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'A', 'a'},
		{'a', 'a'},
		{'É', 'e'},
		{'ç', 'c'},
		{'Ǆ', 'ǆ'},
		{'Ø', 'o'},
		{'İ', 'i'},
		{'\u212a', 'k'}, // Kelvin sign
		{'\u212b', 'a'}, // Angstrom sign
		{'한', '한'},
		{'ß', 'ß'},
		{'\u0301', '\u0301'},
		{0xD800, 0xD800},
	}
	for _, tt := range tests {
		if got := fold(tt.in, 0x10000); got != tt.want {
			t.Errorf("fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFoldOutOfRange(t *testing.T) {
	// é folds to e, but é itself is outside the ASCII table.
	if got := fold('é', 0x80); got != 'e' {
		t.Errorf("fold('é', 0x80) = %q, want 'e'", got)
	}
	for c := rune(0); c < 0x80; c++ {
		if f := fold(c, 0x80); f >= 0x80 {
			t.Errorf("fold(%#x, 0x80) = %#x, outside table", c, f)
		}
	}
}

func TestPairsASCII(t *testing.T) {
	ps := pairs(0x80)
	if len(ps) != 26 {
		t.Fatalf("len(pairs(0x80)) = %d, want 26", len(ps))
	}
	for i, p := range ps {
		if want := rune('A' + i); p[0] != want || p[1] != want+'a'-'A' {
			t.Errorf("pairs(0x80)[%d] = %q, want %q -> %q", i, p, want, want+'a'-'A')
		}
	}
}

func TestPairsIdempotent(t *testing.T) {
	folded := make(map[rune]rune)
	for _, p := range pairs(0x10000) {
		folded[p[0]] = p[1]
	}
	for c, f := range folded {
		if g, ok := folded[f]; ok {
			t.Errorf("fold(%#x) = %#x, which folds again to %#x", c, f, g)
		}
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := render(variants[0]).Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	header := "//go:build lowerlay_ascii\n\n// Code generated by genlaychars. DO NOT EDIT.\n\npackage lowerlay\n"
	if !strings.HasPrefix(out, header) {
		t.Errorf("rendered ascii table starts with %q, want %q", out[:min(len(out), len(header))], header)
	}
	for _, want := range []string{
		`Variant = "ascii"`,
		"TableSize = 0x80",
		"0x0041: 0x0061,",
		"0x005a: 0x007a,",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered ascii table lacks %q", want)
		}
	}
}

func TestCheckedInTablesUpToDate(t *testing.T) {
	for _, v := range variants {
		path := filepath.Join("..", "..", "pkg", "lowerlay", "laychars_"+v.name+".go")
		if err := verifyFile(path, render(v)); err != nil {
			t.Error(err)
		}
	}
}
