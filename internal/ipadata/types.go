// Package ipadata defines the static-table data types described in spec.md
// §3/§6 (letters, breaks/suprasegmentals, combining tables, ties, brackets,
// substitutions) and loads them from tab-separated files, grounded on
// danmysak/ipa-parser's _code/data.py and data_types.py.
package ipadata

import "github.com/danmysak/ipaparser/internal/features"

// CombiningKind classifies how a combining attaches to its base position.
type CombiningKind string

const (
	Preceding CombiningKind = "preceding"
	Following CombiningKind = "following"
	Diacritic CombiningKind = "diacritic"
)

// Combining is a single combining character together with the side it
// attaches on.
type Combining struct {
	Character string
	Kind      CombiningKind
}

// Apply prepends or appends the combining's character to s, per its kind.
func (c Combining) Apply(s string) string {
	if c.Kind == Preceding {
		return c.Character + s
	}
	return s + c.Character
}

// Change is one (feature, add/remove) step within a Transformation.
type Change struct {
	Feature    features.Feature
	IsPositive bool
}

// Transformation is a single diacritic rewrite rule (spec.md §3): it applies
// when Required is a subset of the current feature set, Incompatible is
// disjoint from it, and every Change's feature is in the opposite state from
// what the change would set it to. Applying it performs every Change in
// order.
type Transformation struct {
	Required     features.Set
	Incompatible features.Set
	Changes      []Change
}

// Applicable reports whether t can legally apply to current.
func (t Transformation) Applicable(current features.Set) bool {
	for f := range t.Required {
		if !current.Has(f) {
			return false
		}
	}
	if !current.IsDisjoint(t.Incompatible) {
		return false
	}
	for _, c := range t.Changes {
		if current.Has(c.Feature) == c.IsPositive {
			return false
		}
	}
	return true
}

// Apply performs every change in t against current, returning the new set.
func (t Transformation) Apply(current features.Set) features.Set {
	for _, c := range t.Changes {
		if c.IsPositive {
			current = current.Add(c.Feature)
		} else {
			current = current.Without(c.Feature)
		}
	}
	return current
}

// PositiveChanges returns the features added (not removed) by t's changes,
// used to couple a transformation with combining_meta rules keyed on them.
func (t Transformation) PositiveChanges() features.Set {
	result := make(features.Set, len(t.Changes))
	for _, c := range t.Changes {
		if c.IsPositive {
			result[c.Feature] = struct{}{}
		}
	}
	return result
}

// CombiningTable maps a combining to its ordered list of candidate
// transformations.
type CombiningTable map[Combining][]Transformation

// LetterData maps a base-letter spelling (possibly an alternative reading
// wrapped in the source table's parentheses, already stripped by the
// loader) to its feature set.
type LetterData map[string]features.Set

// SymbolData maps a break/suprasegmental spelling to its single feature.
type SymbolData map[string]features.Feature

// TranscriptionType distinguishes the notational register of a parsed
// transcription, keyed by its enclosing outer bracket pair.
type TranscriptionType string

const (
	Phonetic TranscriptionType = "phonetic"
	Phonemic TranscriptionType = "phonemic"
	Literal  TranscriptionType = "literal"
)

// OuterBracket is a recognized enclosing bracket pair and the
// transcription type it denotes.
type OuterBracket struct {
	Open, Close string
	Type        TranscriptionType
}

// InnerBracket is a recognized optional-content bracket pair (no type).
type InnerBracket struct {
	Open, Close string
}

// Substitution is one (from, to) normalizing string replacement, applied in
// table order.
type Substitution struct {
	From, To string
}

// Data is the complete, immutable, process-wide static table bundle.
type Data struct {
	Consonants      LetterData
	ConsonantsAlt   AlternativeSpelling
	Vowels          LetterData
	VowelsAlt       AlternativeSpelling
	Breaks          SymbolData
	Suprasegmentals SymbolData
	CombiningBasic  CombiningTable
	CombiningMain   CombiningTable
	CombiningMeta   CombiningTable
	Ties            map[string]struct{}
	MainTie         string
	OuterBrackets   []OuterBracket
	InnerBrackets   []InnerBracket
	Substitutions   []Substitution
}

// AlternativeSpelling reports whether a letter-table spelling was marked as
// a secondary ("(...)"-wrapped) reading; the loader strips the parentheses
// but records the fact in this set so the catalog can prefer primary
// spellings on matcher ties (spec.md §4.4).
type AlternativeSpelling map[string]bool
