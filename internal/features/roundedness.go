package features

// Roundedness marks basic lip rounding.
type Roundedness string

const Rounded Roundedness = "rounded"

const KindRoundedness Kind = "Roundedness"

func (f Roundedness) Name() string             { return string(f) }
func (f Roundedness) Kind() Kind               { return KindRoundedness }
func (f Roundedness) Derived() (Feature, bool) { return nil, false }

// RoundednessModifier marks finer degrees/styles of lip rounding.
type RoundednessModifier string

const (
	MoreRounded      RoundednessModifier = "more rounded"
	LessRounded      RoundednessModifier = "less rounded"
	Compressed       RoundednessModifier = "compressed"
	LabialSpreading  RoundednessModifier = "labial spreading"
)

const KindRoundednessModifier Kind = "RoundednessModifier"

func (f RoundednessModifier) Name() string             { return string(f) }
func (f RoundednessModifier) Kind() Kind               { return KindRoundednessModifier }
func (f RoundednessModifier) Derived() (Feature, bool) { return nil, false }

func init() {
	registerKind(KindRoundedness, []Feature{Rounded})
	registerKind(KindRoundednessModifier, []Feature{
		MoreRounded, LessRounded, Compressed, LabialSpreading,
	})
}
