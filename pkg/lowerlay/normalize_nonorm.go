//go:build lowerlay_nonorm

package lowerlay

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// NormalizationEnabled reports whether Unicode normalization is compiled in.
const NormalizationEnabled = false

func fold(s string) string {
	return LowerLayString(s)
}

func transformer() transform.Transformer {
	return runes.Map(LowerLayChar)
}
