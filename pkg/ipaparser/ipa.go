package ipaparser

import (
	"iter"
	"strings"

	"github.com/danmysak/ipaparser/internal/ipadata"
)

// IPA is a parsed transcription: its bracket type, the literal brackets
// that framed it, and its ordered symbols. Grounded on spec.md §4.8 and
// danmysak/ipa-parser's _code/ipa.py.
type IPA struct {
	transcriptionType ipadata.TranscriptionType
	leftBracket       string
	rightBracket      string
	symbols           []Symbol
}

// Type returns the transcription's bracket-determined type (phonetic,
// phonemic, or literal).
func (t IPA) Type() ipadata.TranscriptionType {
	return t.transcriptionType
}

// Len returns the number of top-level symbols in the transcription.
func (t IPA) Len() int {
	return len(t.symbols)
}

// At returns the symbol at index i. It panics if i is out of range, like a
// direct slice index.
func (t IPA) At(i int) Symbol {
	return t.symbols[i]
}

// Slice returns a new transcription of the same type framing symbols
// [i:j).
func (t IPA) Slice(i, j int) IPA {
	return IPA{
		transcriptionType: t.transcriptionType,
		leftBracket:       t.leftBracket,
		rightBracket:      t.rightBracket,
		symbols:           t.symbols[i:j],
	}
}

// All returns an iterator over the transcription's symbols in order.
func (t IPA) All() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, s := range t.symbols {
			if !yield(s) {
				return
			}
		}
	}
}

// String reconstructs the transcription's literal spelling: its left
// bracket, the concatenated spellings of its symbols, and its right
// bracket.
func (t IPA) String() string {
	var b strings.Builder
	b.WriteString(t.leftBracket)
	for _, s := range t.symbols {
		b.WriteString(s.spelling)
	}
	b.WriteString(t.rightBracket)
	return b.String()
}

// Equal reports whether two transcriptions have the same literal spelling.
func (t IPA) Equal(other IPA) bool {
	return t.String() == other.String()
}

// EqualString reports whether the transcription's literal spelling equals
// s.
func (t IPA) EqualString(s string) bool {
	return t.String() == s
}

// Concat returns a new transcription framing t's symbols followed by
// other's. It fails with an IncompatibleTypesError if the two
// transcriptions have different bracket types.
func (t IPA) Concat(other IPA) (IPA, error) {
	if t.transcriptionType != other.transcriptionType {
		return IPA{}, &IncompatibleTypesError{
			Left:  string(t.transcriptionType),
			Right: string(other.transcriptionType),
		}
	}
	symbols := make([]Symbol, 0, len(t.symbols)+len(other.symbols))
	symbols = append(symbols, t.symbols...)
	symbols = append(symbols, other.symbols...)
	return IPA{
		transcriptionType: t.transcriptionType,
		leftBracket:       t.leftBracket,
		rightBracket:      t.rightBracket,
		symbols:           symbols,
	}, nil
}

// ConcatSymbol returns a new transcription framing t's symbols with sym
// appended.
func (t IPA) ConcatSymbol(sym Symbol) IPA {
	symbols := make([]Symbol, len(t.symbols)+1)
	copy(symbols, t.symbols)
	symbols[len(t.symbols)] = sym
	return IPA{
		transcriptionType: t.transcriptionType,
		leftBracket:       t.leftBracket,
		rightBracket:      t.rightBracket,
		symbols:           symbols,
	}
}

// Repeat returns a new transcription whose symbols are t's symbols repeated
// n times. A non-positive n yields an empty transcription.
func (t IPA) Repeat(n int) IPA {
	if n <= 0 {
		return IPA{transcriptionType: t.transcriptionType, leftBracket: t.leftBracket, rightBracket: t.rightBracket}
	}
	symbols := make([]Symbol, 0, len(t.symbols)*n)
	for i := 0; i < n; i++ {
		symbols = append(symbols, t.symbols...)
	}
	return IPA{
		transcriptionType: t.transcriptionType,
		leftBracket:       t.leftBracket,
		rightBracket:      t.rightBracket,
		symbols:           symbols,
	}
}

// matchOuterBrackets finds the outer bracket pair framing the raw
// (pre-normalization) input, per spec.md §4.8. It prefers the pair whose
// open/close together consume the most characters.
func matchOuterBrackets(input string, outer []ipadata.OuterBracket) (ipadata.OuterBracket, bool) {
	var best ipadata.OuterBracket
	found := false
	for _, ob := range outer {
		if len(input) < len(ob.Open)+len(ob.Close) {
			continue
		}
		if !strings.HasPrefix(input, ob.Open) || !strings.HasSuffix(input, ob.Close) {
			continue
		}
		if !found || len(ob.Open)+len(ob.Close) > len(best.Open)+len(best.Close) {
			best = ob
			found = true
		}
	}
	return best, found
}
