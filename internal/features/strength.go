package features

// Strength marks fortis/lenis articulatory strength contrasts.
type Strength string

const (
	Fortis Strength = "fortis"
	Lenis  Strength = "lenis"
)

const KindStrength Kind = "Strength"

func (f Strength) Name() string             { return string(f) }
func (f Strength) Kind() Kind               { return KindStrength }
func (f Strength) Derived() (Feature, bool) { return nil, false }

func init() {
	registerKind(KindStrength, []Feature{Fortis, Lenis})
}
