// Package segment implements spec.md §4.5: the parse loop that turns a
// position sequence into a tree of segments — initial catalog matching,
// two passes of outward diacritic expansion, tie grouping, and compound
// combination. Grounded on danmysak/ipa-parser's _code/combiner.py
// (apply_position, apply_combining, match_to_features) and parser.py's
// overall stage ordering.
package segment

import (
	"github.com/danmysak/ipaparser/internal/catalog"
	"github.com/danmysak/ipaparser/internal/combine"
	"github.com/danmysak/ipaparser/internal/diacritics"
	"github.com/danmysak/ipaparser/internal/features"
	"github.com/danmysak/ipaparser/internal/ipadata"
	"github.com/danmysak/ipaparser/internal/strutil"
)

// Segment is one node of the parse tree. Start/End index the original
// position sequence (half-open). A Segment with Known == false is a raw
// gap: the positions in its span matched nothing. A Known Segment with a
// nil Features is a tied cluster whose members never combined into a
// single compound reading; Components then holds those members.
type Segment struct {
	Start, End int
	Known      bool
	Kind       catalog.Kind
	Features   features.Set
	Components []Segment
}

// Options carries the caller-controlled parsing choices that affect
// segment building beyond the position sequence itself.
type Options struct {
	// AllTied treats every segment boundary as if it carried a tie,
	// per spec.md §4.1's caller-requested "all tied" mode.
	AllTied bool
}

// Build runs the full §4.5 pipeline over positions and returns the
// top-level segments in input order.
func Build(positions []strutil.Position, data *ipadata.Data, options Options) []Segment {
	tieFree := make([]strutil.Position, len(positions))
	for i, p := range positions {
		tieFree[i] = p.TieFree(data.Ties)
	}

	atoms := initialSegmentation(positions, tieFree, data)
	atoms = expand(atoms, tieFree, data)
	groups := tieGroup(atoms, positions, data.Ties, options.AllTied)
	atoms = combineGroups(groups)
	atoms = expand(atoms, tieFree, data)
	return atoms
}

// initialSegmentation implements §4.5 step 1: advance a cursor through
// positions, asking the catalog's matcher for the best candidate at each
// and applying §4.3 to any extra combining marks the match absorbed.
func initialSegmentation(positions, tieFree []strutil.Position, data *ipadata.Data) []Segment {
	matcher := catalog.Get().Matcher
	var atoms []Segment
	for i := 0; i < len(positions); {
		match, ok := matcher.Match(tieFree, i)
		if !ok {
			atoms = append(atoms, Segment{Start: i, End: i + 1})
			i++
			continue
		}
		fset, applied := applyMatchExtras(data, match.Value.Features, match.ExtraByPosition)
		if !applied {
			atoms = append(atoms, Segment{Start: i, End: i + 1})
			i++
			continue
		}
		atoms = append(atoms, Segment{
			Start:    i,
			End:      i + match.PositionCount,
			Known:    true,
			Kind:     match.Value.Kind,
			Features: fset,
		})
		i += match.PositionCount
	}
	return atoms
}

// applyMatchExtras applies every position's unplanned combining marks, in
// position order, via the diacritic engine's own-position (no meta
// coupling) sequence resolution — grounded on match_to_features.
func applyMatchExtras(data *ipadata.Data, fset features.Set, extraByPosition [][]rune) (features.Set, bool) {
	for _, extra := range extraByPosition {
		if len(extra) == 0 {
			continue
		}
		combinings := dedupDiacritics(extra)
		updated, ok := diacritics.ApplySequence(data.CombiningMain, combinings, fset)
		if !ok {
			return nil, false
		}
		fset = updated
	}
	return fset, true
}

func dedupDiacritics(runes []rune) []ipadata.Combining {
	seen := make(map[rune]bool, len(runes))
	combinings := make([]ipadata.Combining, 0, len(runes))
	for _, r := range runes {
		if seen[r] {
			continue
		}
		seen[r] = true
		combinings = append(combinings, ipadata.Combining{Character: string(r), Kind: ipadata.Diacritic})
	}
	return combinings
}

// expand implements §4.5 steps 2 and 5: grow every known segment outward
// by absorbing adjacent single-position gaps whose combining_main
// transformation (coupled with that position's own trailing marks as
// meta diacritics, per apply_position) applies. Growth stops at the first
// position that refuses.
func expand(atoms []Segment, tieFree []strutil.Position, data *ipadata.Data) []Segment {
	out := make([]Segment, 0, len(atoms))
	for _, seg := range atoms {
		if seg.Known && seg.Features != nil {
			for len(out) > 0 {
				left := out[len(out)-1]
				if left.Known || left.End != seg.Start {
					break
				}
				updated, ok := applyPosition(data, tieFree[left.Start], true, seg.Features)
				if !ok {
					break
				}
				seg.Features = updated
				seg.Start = left.Start
				out = out[:len(out)-1]
			}
			out = append(out, seg)
			continue
		}
		if !seg.Known && len(out) > 0 {
			prev := &out[len(out)-1]
			if prev.Known && prev.Features != nil && prev.End == seg.Start {
				if updated, ok := applyPosition(data, tieFree[seg.Start], false, prev.Features); ok {
					prev.Features = updated
					prev.End = seg.End
					continue
				}
			}
		}
		out = append(out, seg)
	}
	return out
}

// applyPosition implements apply_position: the neighbor position's
// leading codepoint is the main combining (looked up as Preceding when
// growing left, Following when growing right), and every further
// codepoint in that position is a meta diacritic coupled to it.
func applyPosition(data *ipadata.Data, pos strutil.Position, preceding bool, current features.Set) (features.Set, bool) {
	runes := pos.Runes()
	if len(runes) == 0 {
		return current, false
	}
	kind := ipadata.Following
	if preceding {
		kind = ipadata.Preceding
	}
	main := ipadata.Combining{Character: string(runes[0]), Kind: kind}
	metas := make([]ipadata.Combining, 0, len(runes)-1)
	for _, r := range runes[1:] {
		metas = append(metas, ipadata.Combining{Character: string(r), Kind: ipadata.Diacritic})
	}
	return diacritics.ApplyWithMeta(data.CombiningMain, data.CombiningMeta, main, metas, current)
}

// tieGroup implements §4.5 step 3: consecutive known segments whose
// shared boundary position carries a tie (or allTied is set) are grouped
// together. A group never bridges an unknown position, per this port's
// resolution of spec.md §9's open question.
func tieGroup(atoms []Segment, positions []strutil.Position, ties map[string]struct{}, allTied bool) [][]Segment {
	if len(atoms) == 0 {
		return nil
	}
	groups := [][]Segment{{atoms[0]}}
	for i := 1; i < len(atoms); i++ {
		prev, cur := atoms[i-1], atoms[i]
		tied := allTied || positions[prev.End-1].HasTie(ties)
		if prev.Known && cur.Known && tied {
			last := len(groups) - 1
			groups[last] = append(groups[last], cur)
			continue
		}
		groups = append(groups, []Segment{cur})
	}
	return groups
}

// combineGroups implements §4.5 step 4: each multi-segment group is
// submitted to the combiner pipeline; a singleton group passes through
// unchanged.
func combineGroups(groups [][]Segment) []Segment {
	result := make([]Segment, 0, len(groups))
	for _, g := range groups {
		if len(g) == 1 {
			result = append(result, g[0])
			continue
		}
		sets := make([]features.Set, len(g))
		for i, s := range g {
			sets[i] = s.Features
		}
		if combined, ok := combine.Combine(sets); ok {
			result = append(result, Segment{
				Start:      g[0].Start,
				End:        g[len(g)-1].End,
				Known:      true,
				Kind:       catalog.KindSound,
				Features:   combined,
				Components: g,
			})
			continue
		}
		result = append(result, Segment{
			Start:      g[0].Start,
			End:        g[len(g)-1].End,
			Known:      true,
			Components: g,
		})
	}
	return result
}
