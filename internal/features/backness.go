package features

// BacknessCategory groups vowel backness into three broad regions.
type BacknessCategory string

const (
	AboutFront   BacknessCategory = "about front"
	AboutCentral BacknessCategory = "about central"
	AboutBack    BacknessCategory = "about back"
)

const KindBacknessCategory Kind = "BacknessCategory"

func (f BacknessCategory) Name() string             { return string(f) }
func (f BacknessCategory) Kind() Kind               { return KindBacknessCategory }
func (f BacknessCategory) Derived() (Feature, bool) { return nil, false }

// Backness is vowel backness (front-back tongue position).
type Backness string

const (
	Front     Backness = "front"
	NearFront Backness = "near-front"
	Central   Backness = "central"
	NearBack  Backness = "near-back"
	Back      Backness = "back"
)

const KindBackness Kind = "Backness"

var backnessToCategory = map[Backness]BacknessCategory{
	Front:     AboutFront,
	NearFront: AboutFront,
	Central:   AboutCentral,
	NearBack:  AboutBack,
	Back:      AboutBack,
}

func (f Backness) Name() string { return string(f) }
func (f Backness) Kind() Kind   { return KindBackness }
func (f Backness) Derived() (Feature, bool) {
	c, ok := backnessToCategory[f]
	return c, ok
}

func init() {
	registerKind(KindBacknessCategory, []Feature{AboutFront, AboutCentral, AboutBack})
	registerKind(KindBackness, []Feature{Front, NearFront, Central, NearBack, Back})
}
