package answer

import "strings"

// Polish cardinal numbers, keyed by their folded forms so lookups are
// accent-insensitive.
var numerals = map[string]int{
	"zero":             0,
	"jeden":            1,
	"dwa":              2,
	"trzy":             3,
	"cztery":           4,
	"piec":             5,
	"szesc":            6,
	"siedem":           7,
	"osiem":            8,
	"dziewiec":         9,
	"dziesiec":         10,
	"jedenascie":       11,
	"dwanascie":        12,
	"trzynascie":       13,
	"czternascie":      14,
	"pietnascie":       15,
	"szesnascie":       16,
	"siedemnascie":     17,
	"osiemnascie":      18,
	"dziewietnascie":   19,
	"dwadziescia":      20,
	"trzydziesci":      30,
	"czterdziesci":     40,
	"piecdziesiat":     50,
	"szescdziesiat":    60,
	"siedemdziesiat":   70,
	"osiemdziesiat":    80,
	"dziewiecdziesiat": 90,
	"sto":              100,
	"dwiescie":         200,
	"trzysta":          300,
	"czterysta":        400,
	"piecset":          500,
	"szescset":         600,
	"siedemset":        700,
	"osiemset":         800,
	"dziewiecset":      900,
	"tysiac":           1000,
}

// NumeralValue parses a term as a Polish cardinal numeral phrase. Values of
// the space-separated words are summed; a single unrecognized word means the
// whole phrase has no numeral value. The literal "zero" parses to a valid 0,
// which is not the same as no match.
func NumeralValue(term string) (int, bool) {
	words := strings.Fields(Fold(term))
	if len(words) == 0 {
		return 0, false
	}

	total := 0
	for _, w := range words {
		v, ok := numerals[w]
		if !ok {
			return 0, false
		}
		total += v
	}

	return total, true
}
