package features

// Airflow marks non-pulmonic egressive/ingressive airstream.
type Airflow string

const (
	EgressiveAirflow  Airflow = "egressive airflow"
	IngressiveAirflow Airflow = "ingressive airflow"
)

const KindAirflow Kind = "Airflow"

func (f Airflow) Name() string             { return string(f) }
func (f Airflow) Kind() Kind               { return KindAirflow }
func (f Airflow) Derived() (Feature, bool) { return SuprasegmentalAirflow, true }

func init() {
	registerKind(KindAirflow, []Feature{EgressiveAirflow, IngressiveAirflow})
}
