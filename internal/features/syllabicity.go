package features

// Syllabicity marks whether a sound carries its own syllable beat.
type Syllabicity string

const (
	Syllabic    Syllabicity = "syllabic"
	Nonsyllabic Syllabicity = "nonsyllabic"
	Anaptyctic  Syllabicity = "anaptyctic"
)

const KindSyllabicity Kind = "Syllabicity"

func (f Syllabicity) Name() string             { return string(f) }
func (f Syllabicity) Kind() Kind               { return KindSyllabicity }
func (f Syllabicity) Derived() (Feature, bool) { return nil, false }

func init() {
	registerKind(KindSyllabicity, []Feature{Syllabic, Nonsyllabic, Anaptyctic})
}
