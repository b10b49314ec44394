package features

// SoundType distinguishes consonants from vowels.
type SoundType string

const (
	Consonant SoundType = "consonant"
	Vowel     SoundType = "vowel"
)

const KindSoundType Kind = "SoundType"

func (f SoundType) Name() string             { return string(f) }
func (f SoundType) Kind() Kind               { return KindSoundType }
func (f SoundType) Derived() (Feature, bool) { return Sound, true }

// SoundSubtype narrows SoundType further: simple sounds versus the
// compound sounds assembled by the combiner stage (affricates, doubly
// articulated consonants, contour clicks, diphthongs, triphthongs).
type SoundSubtype string

const (
	SimpleConsonant            SoundSubtype = "simple consonant"
	DoublyArticulatedConsonant SoundSubtype = "doubly articulated consonant"
	AffricateConsonant         SoundSubtype = "affricate consonant"
	ContourClickConsonant      SoundSubtype = "contour click consonant"
	SimpleVowel                SoundSubtype = "simple vowel"
	DiphthongVowel             SoundSubtype = "diphthong vowel"
	TriphthongVowel            SoundSubtype = "triphthong vowel"
)

const KindSoundSubtype Kind = "SoundSubtype"

var soundSubtypeToType = map[SoundSubtype]SoundType{
	SimpleConsonant:            Consonant,
	DoublyArticulatedConsonant: Consonant,
	AffricateConsonant:         Consonant,
	ContourClickConsonant:      Consonant,
	SimpleVowel:                Vowel,
	DiphthongVowel:             Vowel,
	TriphthongVowel:            Vowel,
}

func (f SoundSubtype) Name() string { return string(f) }
func (f SoundSubtype) Kind() Kind   { return KindSoundSubtype }
func (f SoundSubtype) Derived() (Feature, bool) {
	t, ok := soundSubtypeToType[f]
	return t, ok
}

func init() {
	registerKind(KindSoundType, []Feature{Consonant, Vowel})
	registerKind(KindSoundSubtype, []Feature{
		SimpleConsonant,
		DoublyArticulatedConsonant,
		AffricateConsonant,
		ContourClickConsonant,
		SimpleVowel,
		DiphthongVowel,
		TriphthongVowel,
	})
}
