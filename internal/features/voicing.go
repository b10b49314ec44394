package features

// Voicing marks whether a consonant's vocal folds vibrate during articulation.
type Voicing string

const (
	Voiced    Voicing = "voiced"
	Voiceless Voicing = "voiceless"
)

const KindVoicing Kind = "Voicing"

func (f Voicing) Name() string             { return string(f) }
func (f Voicing) Kind() Kind               { return KindVoicing }
func (f Voicing) Derived() (Feature, bool) { return nil, false }

// Phonation marks non-modal glottal settings layered independently of plain
// voicing (breathy, creaky, and the like).
type Phonation string

const (
	Breathy Phonation = "breathy voiced"
	Creaky  Phonation = "creaky voiced"
)

const KindPhonation Kind = "Phonation"

func (f Phonation) Name() string             { return string(f) }
func (f Phonation) Kind() Kind               { return KindPhonation }
func (f Phonation) Derived() (Feature, bool) { return nil, false }

func init() {
	registerKind(KindVoicing, []Feature{Voiced, Voiceless})
	registerKind(KindPhonation, []Feature{Breathy, Creaky})
}
