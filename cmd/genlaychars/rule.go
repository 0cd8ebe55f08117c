package main

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// strokes covers letters whose diacritic is part of the glyph and therefore
// has no canonical decomposition to strip.
var strokes = map[rune]rune{
	'Ø': 'o', 'ø': 'o',
	'Ł': 'l', 'ł': 'l',
	'Đ': 'd', 'đ': 'd',
	'Ħ': 'h', 'ħ': 'h',
	'Ŧ': 't', 'ŧ': 't',
	'Ƀ': 'b', 'ƀ': 'b',
}

// maxSteps bounds the fixed-point iteration in fold. No code point needs
// more than two steps.
const maxSteps = 4

// step strips the combining marks of c's canonical decomposition, then
// lowercases what is left.
func step(c rune) rune {
	if b, ok := strokes[c]; ok {
		return b
	}
	s := string(c)
	if d := norm.NFD.String(s); d != s {
		base, n := utf8.DecodeRuneInString(d)
		if marksOnly(d[n:]) {
			c = base
		}
	}
	return unicode.ToLower(c)
}

// marksOnly reports whether s is made only of nonspacing marks. Hangul
// syllables decompose into jamo, which are letters, and must be kept whole.
func marksOnly(s string) bool {
	for _, r := range s {
		if !unicode.Is(unicode.Mn, r) {
			return false
		}
	}
	return true
}

// fold returns the folded form of c for a table of the given size, or c
// itself when the folded form would fall outside the table.
func fold(c rune, size int) rune {
	if c >= 0xD800 && c <= 0xDFFF {
		return c
	}
	cur := c
	for i := 0; i < maxSteps; i++ {
		next := step(cur)
		if next == cur {
			break
		}
		cur = next
	}
	if int(cur) >= size {
		return c
	}
	return cur
}

// pairs lists every code point below size whose folded form differs from
// itself, in code point order.
func pairs(size int) [][2]rune {
	var out [][2]rune
	for c := rune(0); int(c) < size; c++ {
		if f := fold(c, size); f != c {
			out = append(out, [2]rune{c, f})
		}
	}
	return out
}
