// Package diacritics applies the combining-table transformations described
// in spec.md §4.3 to a feature set: trying a combining character's
// candidate rules in order, and resolving several unordered diacritics on
// one position by retrying to a fixpoint. Grounded on danmysak/ipa-parser's
// _code/combiner.py (apply_combining, apply_combining_sequence).
package diacritics

import (
	"github.com/danmysak/ipaparser/internal/features"
	"github.com/danmysak/ipaparser/internal/ipadata"
)

// Apply tries combining's candidate transformations, in table order,
// returning the result of the first one applicable to current.
func Apply(table ipadata.CombiningTable, combining ipadata.Combining, current features.Set) (features.Set, bool) {
	for _, t := range table[combining] {
		if t.Applicable(current) {
			return t.Apply(current), true
		}
	}
	return current, false
}

// ApplyWithMeta applies combining's first applicable transformation t, then
// couples it with every meta combining's own transformation whose Required
// set equals t's positive changes, per spec.md §4.3. If any meta combining
// has no such coupled transformation applicable once t has been applied,
// the whole application fails and current is returned unchanged.
func ApplyWithMeta(table, metaTable ipadata.CombiningTable, combining ipadata.Combining, metas []ipadata.Combining, current features.Set) (features.Set, bool) {
	for _, t := range table[combining] {
		if !t.Applicable(current) {
			continue
		}
		positive := t.PositiveChanges()
		result := t.Apply(current)
		coupled := make([]ipadata.Transformation, 0, len(metas))
		for _, m := range metas {
			found := false
			for _, mt := range metaTable[m] {
				if mt.Required.Equal(positive) && mt.Applicable(result) {
					coupled = append(coupled, mt)
					found = true
					break
				}
			}
			if !found {
				return current, false
			}
		}
		for _, mt := range coupled {
			result = mt.Apply(result)
		}
		return result, true
	}
	return current, false
}

// ApplySequence applies every combining in combinings to current, retrying
// in a greedy fixpoint: a combining whose requirements aren't met yet may
// become applicable once an earlier one in the same pass has changed the
// set, so passes repeat until one applies nothing more. It reports the
// final set and whether every combining was eventually applied.
func ApplySequence(table ipadata.CombiningTable, combinings []ipadata.Combining, current features.Set) (features.Set, bool) {
	pending := make([]ipadata.Combining, len(combinings))
	copy(pending, combinings)
	for len(pending) > 0 {
		progressed := false
		var next []ipadata.Combining
		for _, c := range pending {
			if updated, ok := Apply(table, c, current); ok {
				current = updated
				progressed = true
			} else {
				next = append(next, c)
			}
		}
		if !progressed {
			return current, false
		}
		pending = next
	}
	return current, true
}
