package features

// Manner is the consonant manner of articulation.
type Manner string

const (
	Affricate   Manner = "affricate"
	Approximant Manner = "approximant"
	Fricative   Manner = "fricative"
	Lateral     Manner = "lateral"
	Nasal       Manner = "nasal"
	Sibilant    Manner = "sibilant"
	Stop        Manner = "stop"
	TapFlap     Manner = "tap/flap"
	Trill       Manner = "trill"

	Click     Manner = "click"
	Ejective  Manner = "ejective"
	Implosive Manner = "implosive"
)

const KindManner Kind = "Manner"

func (f Manner) Name() string             { return string(f) }
func (f Manner) Kind() Kind               { return KindManner }
func (f Manner) Derived() (Feature, bool) { return nil, false }

func init() {
	registerKind(KindManner, []Feature{
		Affricate, Approximant, Fricative, Lateral, Nasal, Sibilant, Stop, TapFlap, Trill,
		Click, Ejective, Implosive,
	})
}
