package features

// SuprasegmentalType distinguishes the broad category of a suprasegmental
// marker: stress, tone, intonation, or airflow.
type SuprasegmentalType string

const (
	SuprasegmentalStress     SuprasegmentalType = "stress"
	SuprasegmentalTone       SuprasegmentalType = "tone"
	SuprasegmentalIntonation SuprasegmentalType = "intonation"
	SuprasegmentalAirflow    SuprasegmentalType = "airflow"
)

const KindSuprasegmentalType Kind = "SuprasegmentalType"

func (f SuprasegmentalType) Name() string { return string(f) }
func (f SuprasegmentalType) Kind() Kind   { return KindSuprasegmentalType }
func (f SuprasegmentalType) Derived() (Feature, bool) {
	return Suprasegmental, true
}

func init() {
	registerKind(KindSuprasegmentalType, []Feature{
		SuprasegmentalStress,
		SuprasegmentalTone,
		SuprasegmentalIntonation,
		SuprasegmentalAirflow,
	})
}
