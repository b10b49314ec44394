package features

// PlaceCategory groups articulation places into the four broad regions of
// the vocal tract.
type PlaceCategory string

const (
	Labial    PlaceCategory = "labial"
	Coronal   PlaceCategory = "coronal"
	Dorsal    PlaceCategory = "dorsal"
	Laryngeal PlaceCategory = "laryngeal"
)

const KindPlaceCategory Kind = "PlaceCategory"

func (f PlaceCategory) Name() string             { return string(f) }
func (f PlaceCategory) Kind() Kind               { return KindPlaceCategory }
func (f PlaceCategory) Derived() (Feature, bool) { return nil, false }

// Place is the consonant place of articulation.
type Place string

const (
	Bilabial             Place = "bilabial"
	Labiodental          Place = "labiodental"
	Linguolabial         Place = "linguolabial"
	Dental               Place = "dental"
	Alveolar             Place = "alveolar"
	Postalveolar         Place = "postalveolar"
	Retroflex            Place = "retroflex"
	Palatal              Place = "palatal"
	Velar                Place = "velar"
	Uvular               Place = "uvular"
	PharyngealEpiglottal Place = "pharyngeal/epiglottal"
	Glottal              Place = "glottal"
)

const KindPlace Kind = "Place"

var placeToCategory = map[Place]PlaceCategory{
	Bilabial:             Labial,
	Labiodental:          Labial,
	Linguolabial:         Coronal,
	Dental:               Coronal,
	Alveolar:             Coronal,
	Postalveolar:         Coronal,
	Retroflex:            Coronal,
	Palatal:              Dorsal,
	Velar:                Dorsal,
	Uvular:               Dorsal,
	PharyngealEpiglottal: Laryngeal,
	Glottal:              Laryngeal,
}

func (f Place) Name() string { return string(f) }
func (f Place) Kind() Kind   { return KindPlace }
func (f Place) Derived() (Feature, bool) {
	c, ok := placeToCategory[f]
	return c, ok
}

// ToCategory returns the broad region a place of articulation belongs to.
func (f Place) ToCategory() PlaceCategory {
	return placeToCategory[f]
}

func init() {
	registerKind(KindPlaceCategory, []Feature{Labial, Coronal, Dorsal, Laryngeal})
	registerKind(KindPlace, []Feature{
		Bilabial,
		Labiodental,
		Linguolabial,
		Dental,
		Alveolar,
		Postalveolar,
		Retroflex,
		Palatal,
		Velar,
		Uvular,
		PharyngealEpiglottal,
		Glottal,
	})
}
