package features

// Intonation marks global pitch movement across an utterance.
type Intonation string

const (
	GlobalRise Intonation = "global rise"
	GlobalFall Intonation = "global fall"
)

const KindIntonation Kind = "Intonation"

func (f Intonation) Name() string             { return string(f) }
func (f Intonation) Kind() Kind               { return KindIntonation }
func (f Intonation) Derived() (Feature, bool) { return SuprasegmentalIntonation, true }

func init() {
	registerKind(KindIntonation, []Feature{GlobalRise, GlobalFall})
}
