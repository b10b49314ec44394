// Package catalog builds the process-wide lookup of every base spelling a
// transcription can match against: consonants, vowels, breaks,
// suprasegmentals, and their combining_basic-combined forms (length and
// aspiration folded directly into a letter, per spec.md §4.4). Grounded on
// danmysak/ipa-parser's _code/combiner.py (collect_letter_features,
// collect_symbol_features, collect_basic_combined_features, build_matcher).
package catalog

import (
	"fmt"
	"sync"

	"github.com/danmysak/ipaparser/internal/diacritics"
	"github.com/danmysak/ipaparser/internal/features"
	"github.com/danmysak/ipaparser/internal/ipadata"
	"github.com/danmysak/ipaparser/internal/strutil"
	"github.com/danmysak/ipaparser/internal/trie"
)

// Kind classifies which symbol family a catalog entry belongs to.
type Kind string

const (
	KindSound          Kind = "sound"
	KindBreak          Kind = "break"
	KindSuprasegmental Kind = "suprasegmental"
)

// Entry is a base catalog candidate: the feature set a matched spelling
// contributes, tagged with the symbol family it resolves to.
type Entry struct {
	Kind     Kind
	Features features.Set
}

// Catalog is the trie over every known base spelling.
type Catalog struct {
	Matcher *trie.Matcher[Entry]
}

var (
	once sync.Once
	inst *Catalog
	buildErr error
)

// Get builds (once) and returns the process-wide catalog.
func Get() *Catalog {
	once.Do(func() { inst, buildErr = build() })
	if buildErr != nil {
		panic(buildErr)
	}
	return inst
}

type builder struct {
	d       *ipadata.Data
	entries []trie.Entry[Entry]
	spelled map[string]bool
}

func build() (*Catalog, error) {
	b := &builder{d: ipadata.Get(), spelled: make(map[string]bool)}
	if err := b.addLetters(b.d.Consonants, b.d.ConsonantsAlt); err != nil {
		return nil, err
	}
	if err := b.addLetters(b.d.Vowels, b.d.VowelsAlt); err != nil {
		return nil, err
	}
	if err := b.addSymbols(b.d.Breaks, KindBreak); err != nil {
		return nil, err
	}
	if err := b.addSymbols(b.d.Suprasegmentals, KindSuprasegmental); err != nil {
		return nil, err
	}
	return &Catalog{Matcher: trie.New(b.entries)}, nil
}

func (b *builder) add(spelling string, alt bool, entry Entry) error {
	if b.spelled[spelling] {
		return &ipadata.DataError{Message: fmt.Sprintf("catalog: the spelling %q is ambiguous across base tables", spelling)}
	}
	b.spelled[spelling] = true
	b.entries = append(b.entries, trie.Entry[Entry]{
		Positions:   strutil.Positions(strutil.NFD(spelling)),
		Value:       entry,
		AltSpelling: alt,
	})
	return nil
}

func (b *builder) addLetters(letters ipadata.LetterData, alt ipadata.AlternativeSpelling) error {
	for spelling, raw := range letters {
		set := raw.Extend()
		if err := b.add(spelling, alt[spelling], Entry{Kind: KindSound, Features: set}); err != nil {
			return err
		}
		if err := b.addBasicCombined(spelling, set); err != nil {
			return err
		}
	}
	return nil
}

// addBasicCombined tries every combining_basic rule against the letter's
// own feature set, adding a two-position entry (letter, combining
// character) for every rule that applies. Length and aspiration marks are
// spacing modifier letters, not Unicode combining marks, so they occupy
// their own position rather than attaching to the base's.
func (b *builder) addBasicCombined(spelling string, set features.Set) error {
	for combining := range b.d.CombiningBasic {
		updated, ok := diacritics.Apply(b.d.CombiningBasic, combining, set)
		if !ok {
			continue
		}
		if err := b.add(combining.Apply(spelling), false, Entry{Kind: KindSound, Features: updated}); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) addSymbols(symbols ipadata.SymbolData, kind Kind) error {
	for spelling, feature := range symbols {
		if err := b.add(spelling, false, Entry{Kind: kind, Features: features.NewSet(feature).Extend()}); err != nil {
			return err
		}
	}
	return nil
}
