package features

// Articulation marks fine-grained tongue-contact and positioning
// adjustments (apical/laminal, advanced/retracted, and the like).
type Articulation string

const (
	Apical         Articulation = "apical"
	Laminal        Articulation = "laminal"
	Advanced       Articulation = "advanced"
	Retracted      Articulation = "retracted"
	Centralized    Articulation = "centralized"
	MidCentralized Articulation = "mid-centralized"
	Raised         Articulation = "raised"
	Lowered        Articulation = "lowered"
)

const KindArticulation Kind = "Articulation"

func (f Articulation) Name() string             { return string(f) }
func (f Articulation) Kind() Kind               { return KindArticulation }
func (f Articulation) Derived() (Feature, bool) { return nil, false }

func init() {
	registerKind(KindArticulation, []Feature{
		Apical, Laminal, Advanced, Retracted, Centralized, MidCentralized, Raised, Lowered,
	})
}
