package features

// StressType distinguishes primary from secondary stress.
type StressType string

const (
	PrimaryStress   StressType = "primary stress"
	SecondaryStress StressType = "secondary stress"
)

const KindStressType Kind = "StressType"

func (f StressType) Name() string             { return string(f) }
func (f StressType) Kind() Kind               { return KindStressType }
func (f StressType) Derived() (Feature, bool) { return SuprasegmentalStress, true }

// StressSubtype refines StressType with strength variants.
type StressSubtype string

const (
	RegularPrimaryStress      StressSubtype = "regular primary stress"
	ExtraStrongPrimaryStress  StressSubtype = "extra-strong primary stress"
	RegularSecondaryStress    StressSubtype = "regular secondary stress"
	ExtraWeakSecondaryStress  StressSubtype = "extra-weak secondary stress"
)

const KindStressSubtype Kind = "StressSubtype"

var stressSubtypeToType = map[StressSubtype]StressType{
	RegularPrimaryStress:     PrimaryStress,
	ExtraStrongPrimaryStress: PrimaryStress,
	RegularSecondaryStress:   SecondaryStress,
	ExtraWeakSecondaryStress: SecondaryStress,
}

func (f StressSubtype) Name() string { return string(f) }
func (f StressSubtype) Kind() Kind   { return KindStressSubtype }
func (f StressSubtype) Derived() (Feature, bool) {
	t, ok := stressSubtypeToType[f]
	return t, ok
}

func init() {
	registerKind(KindStressType, []Feature{PrimaryStress, SecondaryStress})
	registerKind(KindStressSubtype, []Feature{
		RegularPrimaryStress,
		ExtraStrongPrimaryStress,
		RegularSecondaryStress,
		ExtraWeakSecondaryStress,
	})
}
