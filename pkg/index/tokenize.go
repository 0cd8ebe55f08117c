package index

import (
	"strings"
	"unicode"
)

// Tokenize splits s into words. A word is a run of letters, digits and
// nonspacing marks; marks are kept so that decomposed accents stay attached
// to their base letter until folding.
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r)
	})
}
