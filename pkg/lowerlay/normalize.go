//go:build !lowerlay_nonorm

package lowerlay

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizationEnabled reports whether Unicode normalization is compiled in.
const NormalizationEnabled = true

// NormalizedLowerLayString rewrites s in Normalization Form C, then folds
// it like [LowerLayString]. Combining accents are merged into their base
// letter first, so the result may have fewer characters than s.
func NormalizedLowerLayString(s string) string {
	return LowerLayString(norm.NFC.String(s))
}

func fold(s string) string {
	return NormalizedLowerLayString(s)
}

func transformer() transform.Transformer {
	return transform.Chain(norm.NFC, runes.Map(LowerLayChar))
}
