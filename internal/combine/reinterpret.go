// Package combine implements spec.md §4.6/§4.7: the compound-combiner rule
// set (affricates, doubly articulated consonants, contour clicks,
// prenasalized segments, stop release, diphthongs/triphthongs) and the
// reinterpretation machinery that crosses every rule with alternative
// readings of its inputs. Grounded on danmysak/ipa-parser's
// _code/phonetics.py (alternative_type, alternative_coronal_place, interpret,
// combine_affricate, combine_doubly_articulated, combine_polyphthong,
// combine_features), generalized per spec.md's richer rule set (contour
// click, prenasalized, release, place-pair affricates) that phonetics.py
// does not itself implement.
package combine

import "github.com/danmysak/ipaparser/internal/features"

// approxVowelGeneral is the fixed (non-orthogonal) half of the
// approximant/nonsyllabic-close-vowel equivalence: basic type, syllabicity,
// voicing and height move together, never independently.
var approxVowelGeneral = [2]features.Set{
	features.NewSet(features.SimpleConsonant, features.Voiced, features.Approximant),
	features.NewSet(features.SimpleVowel, features.Nonsyllabic, features.Close),
}

// placeBackness enumerates the place/backness aspect of the equivalence.
var placeBackness = [][2]features.Set{
	{features.NewSet(features.Palatal), features.NewSet(features.Front)},
	{features.NewSet(features.Palatal, features.Retracted), features.NewSet(features.Central)},
	{features.NewSet(features.Velar), features.NewSet(features.Back)},
}

// labializationRoundedness enumerates the labialization/roundedness aspect.
var labializationRoundedness = [][2]features.Set{
	{features.NewSet(features.Labialized), features.NewSet(features.Rounded)},
	{features.NewSet(), features.NewSet()},
}

// approximantVowelPairs is the Cartesian product of the orthogonal aspects
// above, each pair fully extended so it can be compared against a closed
// input feature set.
func approximantVowelPairs() [][2]features.Set {
	pairs := make([][2]features.Set, 0, len(placeBackness)*len(labializationRoundedness))
	for _, pb := range placeBackness {
		for _, lr := range labializationRoundedness {
			consonant := approxVowelGeneral[0].Union(pb[0]).Union(lr[0]).Extend()
			vowel := approxVowelGeneral[1].Union(pb[1]).Union(lr[1]).Extend()
			pairs = append(pairs, [2]features.Set{consonant, vowel})
		}
	}
	return pairs
}

// alternativeType yields f's approximant<->vowel counterpart, if f is
// exactly one of the equivalence skeletons.
func alternativeType(f features.Set) []features.Set {
	var out []features.Set
	for _, pair := range approximantVowelPairs() {
		switch {
		case f.Equal(pair[0]):
			out = append(out, pair[1])
		case f.Equal(pair[1]):
			out = append(out, pair[0])
		}
	}
	return out
}

// removePlace drops a feature set's place feature together with its
// derived category.
func removePlace(f features.Set) features.Set {
	return f.Without(f.Filter(features.KindPlace).Extend().Slice()...)
}

// alternativeCoronalPlace yields dental/postalveolar readings of an
// alveolar consonant. Per this port's resolution of spec.md §9's open
// question, every fricative (not only non-sibilants) is excluded: the
// distinction between an alveolar stop's and an alveolar fricative's
// coronal ambiguity is judged too fine to expose reliably, so the stricter
// rule is locked here.
func alternativeCoronalPlace(f features.Set) []features.Set {
	if !f.Filter(features.KindPlace).Equal(features.NewSet(features.Alveolar)) {
		return nil
	}
	if f.Has(features.Fricative) {
		return nil
	}
	base := removePlace(f)
	out := make([]features.Set, 0, 2)
	for _, p := range []features.Place{features.Dental, features.Postalveolar} {
		out = append(out, base.Union(features.NewSet(p).Extend()))
	}
	return out
}

// Interpretations returns f together with every alternative reading
// spec.md §4.7 defines, primary first, as a lazily-exhausted slice (its
// callers stop at the first one that lets a combiner rule fire).
func Interpretations(f features.Set) []features.Set {
	result := []features.Set{f}
	result = append(result, alternativeType(f)...)
	result = append(result, alternativeCoronalPlace(f)...)
	return result
}

// FeaturesForRole returns the first interpretation of f (including f
// itself) containing role, or (nil, false) if none does.
func FeaturesForRole(f features.Set, role features.Feature) (features.Set, bool) {
	for _, alt := range Interpretations(f) {
		if alt.Has(role) {
			return alt, true
		}
	}
	return nil, false
}

func placeOf(f features.Set) (features.Place, bool) {
	for feat := range f.Filter(features.KindPlace) {
		if p, ok := feat.(features.Place); ok {
			return p, true
		}
	}
	return "", false
}
