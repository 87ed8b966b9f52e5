package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Package textfold lowercases text and strips Vietnamese diacritics so that
// vendor headers and shift annotations can be matched by plain ASCII keywords.
// Folding is done rune by rune, so the folded string always has the same rune
// count as the input; callers can locate a marker in the folded form and slice
// the original at the same rune offset.

// FoldRune returns the lowercase base letter of r with combining marks removed.
func FoldRune(r rune) rune {
	// đ decomposes to itself under NFD, handle it explicitly.
	if r == 'đ' || r == 'Đ' {
		return 'd'
	}
	decomposed := norm.NFD.String(string(r))
	for _, d := range decomposed {
		if unicode.Is(unicode.Mn, d) {
			continue
		}
		return unicode.ToLower(d)
	}
	return unicode.ToLower(r)
}

// Fold returns s lowercased with diacritics removed.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(FoldRune(r))
	}
	return b.String()
}

// Contains reports whether s contains substr after folding both sides.
func Contains(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}

// Index returns the rune offset of the folded substr within the folded s,
// or -1 when absent. Because folding preserves rune counts, the offset is
// also valid into []rune(s).
func Index(s, substr string) int {
	folded := Fold(s)
	i := strings.Index(folded, Fold(substr))
	if i < 0 {
		return -1
	}
	return len([]rune(folded[:i]))
}
