package features

// Aspiration marks aspirated/unaspirated/preaspirated release.
type Aspiration string

const (
	Aspirated    Aspiration = "aspirated"
	Unaspirated  Aspiration = "unaspirated"
	Preaspirated Aspiration = "preaspirated"
)

const KindAspiration Kind = "Aspiration"

func (f Aspiration) Name() string             { return string(f) }
func (f Aspiration) Kind() Kind               { return KindAspiration }
func (f Aspiration) Derived() (Feature, bool) { return nil, false }

func init() {
	registerKind(KindAspiration, []Feature{Aspirated, Unaspirated, Preaspirated})
}
