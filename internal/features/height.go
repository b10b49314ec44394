package features

// HeightCategory groups vowel height into three broad regions.
type HeightCategory string

const (
	AboutClose HeightCategory = "about close"
	AboutMid   HeightCategory = "about mid"
	AboutOpen  HeightCategory = "about open"
)

const KindHeightCategory Kind = "HeightCategory"

func (f HeightCategory) Name() string             { return string(f) }
func (f HeightCategory) Kind() Kind               { return KindHeightCategory }
func (f HeightCategory) Derived() (Feature, bool) { return nil, false }

// Height is vowel height (tongue proximity to the roof of the mouth).
type Height string

const (
	Close    Height = "close"
	NearClose Height = "near-close"
	CloseMid Height = "close-mid"
	Mid      Height = "mid"
	OpenMid  Height = "open-mid"
	NearOpen Height = "near-open"
	Open     Height = "open"
)

const KindHeight Kind = "Height"

var heightToCategory = map[Height]HeightCategory{
	Close:     AboutClose,
	NearClose: AboutClose,
	CloseMid:  AboutMid,
	Mid:       AboutMid,
	OpenMid:   AboutMid,
	NearOpen:  AboutOpen,
	Open:      AboutOpen,
}

func (f Height) Name() string { return string(f) }
func (f Height) Kind() Kind   { return KindHeight }
func (f Height) Derived() (Feature, bool) {
	c, ok := heightToCategory[f]
	return c, ok
}

func init() {
	registerKind(KindHeightCategory, []Feature{AboutClose, AboutMid, AboutOpen})
	registerKind(KindHeight, []Feature{Close, NearClose, CloseMid, Mid, OpenMid, NearOpen, Open})
}
