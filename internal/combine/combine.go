package combine

import "github.com/danmysak/ipaparser/internal/features"

var placePairs = [][2]features.Place{
	{features.Alveolar, features.Palatal},
	{features.Bilabial, features.Labiodental},
}

func placesCompatible(left, right features.Set) bool {
	lp, lok := placeOf(left)
	rp, rok := placeOf(right)
	if !lok || !rok {
		return false
	}
	if lp == rp {
		return true
	}
	for _, pair := range placePairs {
		if (lp == pair[0] && rp == pair[1]) || (lp == pair[1] && rp == pair[0]) {
			return true
		}
	}
	return false
}

// affricate implements spec.md §4.6's affricate rule, grounded on
// danmysak/ipa-parser's combine_affricate and extended with the
// (alveolar,palatal)/(bilabial,labiodental) place-pair allowance spec.md
// adds beyond that source.
func affricate(left, right features.Set) (features.Set, bool) {
	if !left.Has(features.SimpleConsonant) || !left.Has(features.Stop) {
		return nil, false
	}
	if !right.Has(features.SimpleConsonant) {
		return nil, false
	}
	rightManner := right.Filter(features.KindManner)
	if !rightManner.Has(features.Fricative) && !rightManner.Has(features.Sibilant) && !rightManner.Has(features.Lateral) {
		return nil, false
	}
	leftCore := left.Without(features.Stop, features.Ejective)
	rightCore := right.Without(features.Fricative, features.Sibilant, features.Lateral, features.Ejective)
	kinds := []features.Kind{features.KindSoundSubtype, features.KindManner, features.KindVoicing}
	if !features.Equivalent(kinds, leftCore, rightCore) {
		return nil, false
	}
	if !placesCompatible(left, right) {
		return nil, false
	}
	combined := left.Union(right).
		Without(features.SimpleConsonant, features.Stop, features.Fricative).
		Add(features.AffricateConsonant).
		Add(features.Affricate)
	return combined.Extend(), true
}

// doublyArticulated implements spec.md §4.6's doubly-articulated rule,
// grounded on combine_doubly_articulated, extended to remove ejective
// before the equivalence check per spec.md.
func doublyArticulated(left, right features.Set) (features.Set, bool) {
	if !left.Has(features.SimpleConsonant) || !right.Has(features.SimpleConsonant) {
		return nil, false
	}
	lc := left.Without(features.Ejective)
	rc := right.Without(features.Ejective)
	kinds := []features.Kind{features.KindSoundSubtype, features.KindManner, features.KindVoicing}
	if !features.Equivalent(kinds, lc, rc) {
		return nil, false
	}
	lp, lok := placeOf(left)
	rp, rok := placeOf(right)
	if !lok || !rok || lp.ToCategory() == rp.ToCategory() {
		return nil, false
	}
	combined := left.Union(right).
		Without(features.SimpleConsonant).
		Add(features.DoublyArticulatedConsonant)
	return combined.Extend(), true
}

// contourClick implements spec.md §4.6's contour-click rule: a click
// followed by a uvular stop or fricative, adding stop manner for a stop and
// affricate manner for a fricative.
func contourClick(left, right features.Set) (features.Set, bool) {
	if !left.Has(features.SimpleConsonant) || !left.Has(features.Click) {
		return nil, false
	}
	if !right.Has(features.SimpleConsonant) {
		return nil, false
	}
	rp, ok := placeOf(right)
	if !ok || rp != features.Uvular {
		return nil, false
	}
	rightManner := right.Without(features.Ejective).Filter(features.KindManner)
	var carry features.Feature
	switch {
	case rightManner.Has(features.Stop):
		carry = features.Stop
	case rightManner.Has(features.Fricative):
		carry = features.Affricate
	default:
		return nil, false
	}
	combined := left.Union(right).
		Without(features.SimpleConsonant).
		Add(features.ContourClickConsonant).
		Add(carry)
	return combined.Extend(), true
}

// prenasalized implements spec.md §4.6's prenasalized rule: a left segment
// that is exactly a bare (voiced or voiceless) nasal at the right segment's
// place merges into the right segment.
func prenasalized(left, right features.Set) (features.Set, bool) {
	rp, ok := placeOf(right)
	if !ok {
		return nil, false
	}
	voiceless := features.NewSet(rp, features.SimpleConsonant, features.Nasal).Extend()
	voiced := voiceless.Union(features.NewSet(features.Voiced)).Extend()
	var isVoiceless bool
	switch {
	case left.Equal(voiceless):
		isVoiceless = true
	case left.Equal(voiced):
		isVoiceless = false
	default:
		return nil, false
	}
	combined := right.Add(features.Prenasalized)
	if isVoiceless {
		combined = combined.Add(features.VoicelesslyPrenasalized)
	}
	return combined.Extend(), true
}

type releaseRule struct {
	matches func(features.Set) bool
	feature features.Release
}

var releaseRules = []releaseRule{
	{
		matches: func(s features.Set) bool {
			return s.Has(features.Lateral) && s.Has(features.Approximant) && s.Has(features.Alveolar) && s.Has(features.Voiced)
		},
		feature: features.LateralRelease,
	},
	{
		matches: func(s features.Set) bool { return s.Has(features.Fricative) && s.Has(features.Dental) },
		feature: features.VoicelessDentalFricativeRelease,
	},
	{
		matches: func(s features.Set) bool {
			return s.Has(features.Sibilant) && s.Has(features.Fricative) && s.Has(features.Alveolar)
		},
		feature: features.VoicelessAlveolarSibilantFricativeRelease,
	},
	{
		matches: func(s features.Set) bool { return s.Has(features.Fricative) && s.Has(features.Velar) },
		feature: features.VoicelessVelarFricativeRelease,
	},
	{
		matches: func(s features.Set) bool { return s.Has(features.Nasal) && s.Has(features.Voiced) },
		feature: features.NasalRelease,
	},
}

// release implements spec.md §4.6's stop-release rule: a stop followed by
// one of a fixed shortlist of consonants is absorbed as that stop's release
// quality.
func release(left, right features.Set) (features.Set, bool) {
	if !left.Has(features.SimpleConsonant) || !left.Has(features.Stop) {
		return nil, false
	}
	for _, rule := range releaseRules {
		if rule.matches(right) {
			return left.Add(rule.feature).Extend(), true
		}
	}
	return nil, false
}

// combinePolyphthong implements spec.md §4.6's diphthong/triphthong rule,
// grounded on combine_polyphthong: every input must be a simple vowel, and
// at least one must carry its own syllable beat (be neither nonsyllabic nor
// anaptyctic).
func combinePolyphthong(subtype features.SoundSubtype, sets ...features.Set) (features.Set, bool) {
	weak := features.NewSet(features.Nonsyllabic, features.Anaptyctic)
	anyStrong := false
	var combined features.Set
	for _, s := range sets {
		if !s.Has(features.SimpleVowel) {
			return nil, false
		}
		if s.IsDisjoint(weak) {
			anyStrong = true
		}
		combined = combined.Union(s)
	}
	if !anyStrong {
		return nil, false
	}
	combined = combined.Add(subtype).Without(features.SimpleVowel).Without(weak.Slice()...)
	return combined.Extend(), true
}

func diphthong(left, right features.Set) (features.Set, bool) {
	return combinePolyphthong(features.DiphthongVowel, left, right)
}

func triphthong(left, middle, right features.Set) (features.Set, bool) {
	return combinePolyphthong(features.TriphthongVowel, left, middle, right)
}

// pairRules are tried in order; the first one applicable wins, per spec.md
// §4.6's "dispatch table... first success wins".
var pairRules = []func(a, b features.Set) (features.Set, bool){
	affricate, doublyArticulated, contourClick, prenasalized, release, diphthong,
}

// interpretAll returns the Cartesian product of Interpretations(s) for
// every s in sets, grounded on combine_features's
// `product(*map(interpret, feature_sets))`.
func interpretAll(sets []features.Set) [][]features.Set {
	if len(sets) == 0 {
		return [][]features.Set{{}}
	}
	rest := interpretAll(sets[1:])
	out := make([][]features.Set, 0, len(rest)*2)
	for _, alt := range Interpretations(sets[0]) {
		for _, r := range rest {
			combo := make([]features.Set, 0, len(r)+1)
			combo = append(combo, alt)
			combo = append(combo, r...)
			out = append(out, combo)
		}
	}
	return out
}

// Pair tries every pair rule against every interpretation of left and
// right, in rule order, first success wins.
func Pair(left, right features.Set) (features.Set, bool) {
	for _, combo := range interpretAll([]features.Set{left, right}) {
		for _, rule := range pairRules {
			if combined, ok := rule(combo[0], combo[1]); ok {
				return combined, true
			}
		}
	}
	return nil, false
}

// Triple implements spec.md §4.6's triphthong dispatch: try the dedicated
// three-way rule first, then compose two pair rules left-to-right and
// right-to-left.
func Triple(left, middle, right features.Set) (features.Set, bool) {
	for _, combo := range interpretAll([]features.Set{left, middle, right}) {
		if combined, ok := triphthong(combo[0], combo[1], combo[2]); ok {
			return combined, true
		}
	}
	if lm, ok := Pair(left, middle); ok {
		if combined, ok := Pair(lm, right); ok {
			return combined, true
		}
	}
	if mr, ok := Pair(middle, right); ok {
		if combined, ok := Pair(left, mr); ok {
			return combined, true
		}
	}
	return nil, false
}

// Combine dispatches to Pair or Triple by arity, per spec.md §4.6; groups
// of any other size never combine.
func Combine(sets []features.Set) (features.Set, bool) {
	switch len(sets) {
	case 2:
		return Pair(sets[0], sets[1])
	case 3:
		return Triple(sets[0], sets[1], sets[2])
	default:
		return nil, false
	}
}
