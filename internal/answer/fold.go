package answer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normalizes a string for lenient comparison: surrounding whitespace is
// trimmed, the result is lower-cased and diacritical marks are stripped.
// Folding is idempotent.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	// The stroked l has no combining-mark decomposition, so NFD leaves it
	// alone. It is the one Polish letter that needs a manual mapping.
	return strings.Map(func(r rune) rune {
		if r == 'ł' {
			return 'l'
		}
		return r
	}, folded)
}
