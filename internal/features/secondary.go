package features

// SecondaryPlace marks a secondary place of articulation overlaid on a
// primary consonant (labialized, palatalized, velarized, ...).
type SecondaryPlace string

const (
	Labialized     SecondaryPlace = "labialized"
	Palatalized    SecondaryPlace = "palatalized"
	Velarized      SecondaryPlace = "velarized"
	Pharyngealized SecondaryPlace = "pharyngealized"
	Glottalized    SecondaryPlace = "glottalized"
)

const KindSecondaryPlace Kind = "SecondaryPlace"

func (f SecondaryPlace) Name() string             { return string(f) }
func (f SecondaryPlace) Kind() Kind               { return KindSecondaryPlace }
func (f SecondaryPlace) Derived() (Feature, bool) { return nil, false }

// SecondaryModifier marks other secondary articulatory modifications
// (nasalization, prenasalization, r-coloring, and the like).
type SecondaryModifier string

const (
	AdvancedTongueRoot       SecondaryModifier = "advanced tongue root"
	RetractedTongueRoot      SecondaryModifier = "retracted tongue root"
	RColored                 SecondaryModifier = "r-colored"
	Nasalized                SecondaryModifier = "nasalized"
	Prenasalized             SecondaryModifier = "prenasalized"
	VoicelesslyPrenasalized  SecondaryModifier = "voicelessly prenasalized"
	Prestopped               SecondaryModifier = "prestopped"
	Preglottalized           SecondaryModifier = "preglottalized"
)

const KindSecondaryModifier Kind = "SecondaryModifier"

func (f SecondaryModifier) Name() string             { return string(f) }
func (f SecondaryModifier) Kind() Kind               { return KindSecondaryModifier }
func (f SecondaryModifier) Derived() (Feature, bool) { return nil, false }

func init() {
	registerKind(KindSecondaryPlace, []Feature{
		Labialized, Palatalized, Velarized, Pharyngealized, Glottalized,
	})
	registerKind(KindSecondaryModifier, []Feature{
		AdvancedTongueRoot, RetractedTongueRoot, RColored, Nasalized,
		Prenasalized, VoicelesslyPrenasalized, Prestopped, Preglottalized,
	})
}
