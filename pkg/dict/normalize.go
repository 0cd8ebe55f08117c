// CLAUDE:SUMMARY Term folding modes (lower_lay, lower_lay_raw, lowercase_utf8, none) applied to dictionary keys and queries.
package dict

import (
	"strings"

	"github.com/hazyhaar/lowerlay/pkg/lowerlay"
)

// Normalizer transforms a term before it is stored or looked up.
type Normalizer func(string) string

// Normalize modes accepted in a manifest's format.normalize field.
const (
	ModeLowerLay      = "lower_lay"
	ModeLowerLayRaw   = "lower_lay_raw"
	ModeLowercaseUTF8 = "lowercase_utf8"
	ModeNone          = "none"
)

// NormalizeLowerLay normalizes, lowercases and strips accents
// (e.g. DUPONT -> dupont, Élodie -> elodie).
func NormalizeLowerLay(s string) string {
	return lowerlay.Fold(s)
}

// NormalizeLowerLayRaw folds without normalizing first; decomposed accents
// are kept. Suitable for data known to be in NFC already.
func NormalizeLowerLayRaw(s string) string {
	return lowerlay.LowerLayString(s)
}

// NormalizeLowercaseUTF8 lowercases but preserves accents.
func NormalizeLowercaseUTF8(s string) string {
	return strings.ToLower(s)
}

// NormalizeNone returns the term unchanged.
func NormalizeNone(s string) string {
	return s
}

// GetNormalizer returns the normalizer for the given mode.
// Empty and unknown modes fall back to lower_lay.
func GetNormalizer(mode string) Normalizer {
	switch mode {
	case ModeLowerLayRaw:
		return NormalizeLowerLayRaw
	case ModeLowercaseUTF8:
		return NormalizeLowercaseUTF8
	case ModeNone:
		return NormalizeNone
	default:
		return NormalizeLowerLay
	}
}
