// Package lowerlay folds text to a lowercased, diacritics-free form, one
// character at a time.
//
// Folding never changes the number of characters of a string: every
// character maps to exactly one character, usually a single-byte ASCII
// letter for Latin text. Characters without a known folded form are left
// unchanged.
//
// The folding table is generated by cmd/genlaychars and compiled in one of
// two variants:
//
//   - bmp (default): the whole Basic Multilingual Plane, U+0000 to U+FFFF;
//   - ascii (build tag lowerlay_ascii): U+0000 to U+007F, which only
//     lowercases A-Z.
//
// Unicode normalization support is compiled in unless the build tag
// lowerlay_nonorm is set. Without it [NormalizedLowerLayString] does not
// exist and [Fold] does not normalize.
//
// The table is built once at package initialization and never modified,
// so every function of this package is safe for concurrent use.
package lowerlay

import (
	"strings"

	"golang.org/x/text/transform"
)

//go:generate go run ../../cmd/genlaychars --variant all --out .

var layChars = buildTable()

func buildTable() *[TableSize]rune {
	var t [TableSize]rune
	for i := range t {
		t[i] = rune(i)
	}
	for c, f := range layPairs {
		t[c] = f
	}
	return &t
}

// LowerLayChar returns the lowercased diacritics-free version of c, or c
// itself when the table has none.
func LowerLayChar(c rune) rune {
	if c >= 0 && c < TableSize {
		return layChars[c]
	}
	return c
}

// LowerLayString replaces every character of s with its lowercased
// diacritics-free equivalent whenever possible. The result has the same
// number of characters as s; its byte length may differ.
//
// No normalization is done: a base letter followed by a combining accent
// keeps its accent. Callers holding text of unknown form should use
// [NormalizedLowerLayString].
func LowerLayString(s string) string {
	return strings.Map(LowerLayChar, s)
}

// Fold is the most complete fold this build offers: [NormalizedLowerLayString]
// when normalization is compiled in, [LowerLayString] otherwise.
func Fold(s string) string {
	return fold(s)
}

// FoldedEqual reports whether a and b are equal once folded.
func FoldedEqual(a, b string) bool {
	return a == b || Fold(a) == Fold(b)
}

// Transformer returns a new streaming transformer equivalent to [Fold].
// Transformers are stateful and must not be shared between goroutines.
func Transformer() transform.Transformer {
	return transformer()
}
