// Package strutil implements the Unicode-aware string machinery spec.md
// §4.1 describes: NFD normalization, position segmentation, bracket
// strategies, tie-combining, and substitutions. Grounded on the teacher's
// own use of golang.org/x/text/unicode/norm in pkg/phonetic.go for
// Unicode-aware vowel/letter normalization, and on danmysak/ipa-parser's
// _code/strings.py (decompose/is_decomposed).
package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NFD returns the canonical (NFD) decomposition of s.
func NFD(s string) string {
	return norm.NFD.String(s)
}

// IsNFD reports whether s is already in NFD form.
func IsNFD(s string) bool {
	return norm.NFD.IsNormalString(s)
}

// IsCombiningRune reports whether r is a Unicode combining mark (general
// category Mn or Mc), per the glossary's definition.
func IsCombiningRune(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Mc)
}

// Position is a maximal slice of an NFD-normalized string beginning at a
// non-combining codepoint followed by zero or more combining codepoints
// (spec.md §4.1). The leading position of a string may itself consist
// solely of combining codepoints if the input starts with one.
type Position string

// Positions splits an NFD-normalized string into its ordered position
// sequence.
func Positions(s string) []Position {
	var result []Position
	var current []rune
	for _, r := range s {
		if IsCombiningRune(r) {
			current = append(current, r)
			continue
		}
		if len(current) > 0 {
			result = append(result, Position(string(current)))
		}
		current = []rune{r}
	}
	if len(current) > 0 {
		result = append(result, Position(string(current)))
	}
	return result
}

// Join reconstructs a string from a position sequence.
func Join(positions []Position) string {
	var b strings.Builder
	for _, p := range positions {
		b.WriteString(string(p))
	}
	return b.String()
}

// TieFree returns p with every tie codepoint after its first rune removed,
// per spec.md §4.1's "tie-free projection".
func (p Position) TieFree(ties map[string]struct{}) Position {
	runes := []rune(string(p))
	if len(runes) == 0 {
		return p
	}
	var b strings.Builder
	b.WriteRune(runes[0])
	for _, r := range runes[1:] {
		if _, isTie := ties[string(r)]; isTie {
			continue
		}
		b.WriteRune(r)
	}
	return Position(b.String())
}

// Runes returns p's codepoints.
func (p Position) Runes() []rune {
	return []rune(string(p))
}

// HasTie reports whether any rune of p (besides a possible leading base
// rune) is one of the given ties.
func (p Position) HasTie(ties map[string]struct{}) bool {
	for _, r := range p.Runes() {
		if _, ok := ties[string(r)]; ok {
			return true
		}
	}
	return false
}
