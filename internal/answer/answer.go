// Package answer defines the equivalence class of acceptable textual answers
// for an expected vocabulary term and tests raw user input against it.
package answer

import (
	"sort"
	"strconv"
	"strings"
)

// Accepted returns every acceptable spelling for the expected term: the term
// itself, its diacritic-free form when that differs from the lower-cased
// original, and the digit form when the term is a Polish cardinal numeral.
// The result is sorted by folded form.
func Accepted(expected string) []string {
	set := map[string]struct{}{expected: {}}

	if folded := Fold(expected); folded != strings.ToLower(strings.TrimSpace(expected)) {
		set[folded] = struct{}{}
	}

	if v, ok := NumeralValue(expected); ok {
		set[strconv.Itoa(v)] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return Fold(out[i]) < Fold(out[j]) })

	return out
}

// Acceptable reports whether input matches any accepted spelling under
// folded comparison.
func Acceptable(input string, accepted []string) bool {
	folded := Fold(input)
	for _, a := range accepted {
		if folded == Fold(a) {
			return true
		}
	}
	return false
}
