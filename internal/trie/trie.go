// Package trie implements the longest-match lookup over multi-codepoint
// graphemes spec.md §4.2 describes: catalog entries are stored as ordered
// position sequences, and a step that would fail a literal match may
// instead be absorbed as an unplanned combining diacritic. Grounded on
// danmysak/ipa-parser's _code/matcher.py (Matcher._match_with_extra,
// grouping candidates by their combining-stripped skeleton and picking the
// longest at each skeleton), generalized per spec.md's richer ranking rule
// (position count, then fewest absorbed extras, then longer spelling).
package trie

import (
	"sort"
	"strings"

	"github.com/danmysak/ipaparser/internal/strutil"
)

// Entry is one catalog candidate: an ordered, tie-free position sequence
// together with the value it resolves to.
type Entry[T any] struct {
	Positions []strutil.Position
	Value     T
	// AltSpelling marks a secondary reading (spec.md §4.4's
	// parenthesized alternative letters), preferred less on ties.
	AltSpelling bool
}

// Match is the best candidate found at a cursor: how many input positions
// it consumed, the resolved value, and — for each consumed position — the
// combining codepoints present in the input but not required by the match
// (to be fed to the diacritic engine).
type Match[T any] struct {
	PositionCount int
	Value         T
	ExtraByPosition [][]rune
}

type candidate[T any] struct {
	positions   []strutil.Position
	value       T
	alt         bool
	spellingLen int
}

// Matcher resolves the longest catalog entry matching a run of input
// positions, tolerating extra combining marks within each position.
type Matcher[T any] struct {
	maxLength  int
	bySkeleton map[string][]candidate[T]
}

// New builds a Matcher over the given catalog entries.
func New[T any](entries []Entry[T]) *Matcher[T] {
	m := &Matcher[T]{bySkeleton: make(map[string][]candidate[T])}
	for _, e := range entries {
		if len(e.Positions) > m.maxLength {
			m.maxLength = len(e.Positions)
		}
		skeleton := skeletonOf(e.Positions)
		spellingLen := 0
		for _, p := range e.Positions {
			spellingLen += len(p.Runes())
		}
		m.bySkeleton[skeleton] = append(m.bySkeleton[skeleton], candidate[T]{
			positions:   e.Positions,
			value:       e.Value,
			alt:         e.AltSpelling,
			spellingLen: spellingLen,
		})
	}
	for _, candidates := range m.bySkeleton {
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].spellingLen != candidates[j].spellingLen {
				return candidates[i].spellingLen > candidates[j].spellingLen
			}
			return !candidates[i].alt && candidates[j].alt
		})
	}
	return m
}

// skeletonOf is the concatenation of every position's non-combining
// codepoints — i.e. the literal characters a candidate requires, ignoring
// any Unicode combining marks. Its rune count always equals the number of
// positions, since position segmentation guarantees exactly one
// non-combining codepoint leads each position (or none, for a leading
// all-combining position, which then contributes nothing and is excluded
// from matching as a catalog entry).
func skeletonOf(positions []strutil.Position) string {
	var b strings.Builder
	for _, p := range positions {
		for _, r := range p.Runes() {
			if !strutil.IsCombiningRune(r) {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// Match finds the best candidate starting at positions[start:], per
// spec.md §4.2's ranking: most positions consumed, then fewest absorbed
// extras, then (within a tie) a longer underlying spelling.
func (m *Matcher[T]) Match(positions []strutil.Position, start int) (Match[T], bool) {
	maxLen := m.maxLength
	if avail := len(positions) - start; avail < maxLen {
		maxLen = avail
	}
	for length := maxLen; length >= 1; length-- {
		given := positions[start : start+length]
		skeleton := skeletonOf(given)
		var best *Match[T]
		bestExtras := -1
		for _, cand := range m.bySkeleton[skeleton] {
			extras, ok := matchWithExtra(given, cand.positions)
			if !ok {
				continue
			}
			count := 0
			for _, e := range extras {
				count += len(e)
			}
			if best == nil || count < bestExtras {
				v := Match[T]{PositionCount: length, Value: cand.value, ExtraByPosition: extras}
				best = &v
				bestExtras = count
				if count == 0 {
					break
				}
			}
		}
		if best != nil {
			return *best, true
		}
	}
	return Match[T]{}, false
}

// matchWithExtra checks whether every required position is satisfied by
// the corresponding given position as an ordered subsequence, returning
// the leftover codepoints (which must all be combining marks) per
// position.
func matchWithExtra(given []strutil.Position, required []strutil.Position) ([][]rune, bool) {
	if len(given) != len(required) {
		return nil, false
	}
	result := make([][]rune, len(given))
	for i := range given {
		extra, ok := matchPositionWithExtra(given[i].Runes(), required[i].Runes())
		if !ok {
			return nil, false
		}
		result[i] = extra
	}
	return result, true
}

func matchPositionWithExtra(given, required []rune) ([]rune, bool) {
	var extra []rune
	consumedAny := len(required) == 0
	ri := 0
	for _, g := range given {
		if ri < len(required) && required[ri] == g {
			ri++
			consumedAny = true
			continue
		}
		if !strutil.IsCombiningRune(g) || !consumedAny {
			return nil, false
		}
		extra = append(extra, g)
	}
	return extra, ri == len(required)
}
