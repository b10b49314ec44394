package features

// Tone represents a pitch-contour marker that is not expressed via a tone
// letter, number, or step (e.g. a standalone contour diacritic).
type Tone string

const (
	ExtraHighTone      Tone = "extra-high tone"
	HighTone           Tone = "high tone"
	MidTone            Tone = "mid tone"
	LowTone            Tone = "low tone"
	ExtraLowTone       Tone = "extra-low tone"
	RisingTone         Tone = "rising tone"
	FallingTone        Tone = "falling tone"
	HighMidRisingTone  Tone = "high/mid rising tone"
	LowRisingTone      Tone = "low rising tone"
	HighFallingTone    Tone = "high falling tone"
	LowMidFallingTone  Tone = "low/mid falling tone"
	PeakingTone        Tone = "peaking tone"
	DippingTone        Tone = "dipping tone"
)

const KindTone Kind = "Tone"

func (f Tone) Name() string             { return string(f) }
func (f Tone) Kind() Kind               { return KindTone }
func (f Tone) Derived() (Feature, bool) { return SuprasegmentalTone, true }

// ToneType distinguishes the three notational conventions for tone.
type ToneType string

const (
	ToneLetterType ToneType = "tone letter"
	ToneNumberType ToneType = "tone number"
	ToneStepType   ToneType = "tone step"
)

const KindToneType Kind = "ToneType"

func (f ToneType) Name() string             { return string(f) }
func (f ToneType) Kind() Kind               { return KindToneType }
func (f ToneType) Derived() (Feature, bool) { return SuprasegmentalTone, true }

// ToneLetter is a Chao tone-letter pitch level.
type ToneLetter string

const (
	HighToneLetter     ToneLetter = "high tone letter"
	HalfHighToneLetter ToneLetter = "half-high tone letter"
	MidToneLetter      ToneLetter = "mid tone letter"
	HalfLowToneLetter  ToneLetter = "half-low tone letter"
	LowToneLetter      ToneLetter = "low tone letter"
)

const KindToneLetter Kind = "ToneLetter"

func (f ToneLetter) Name() string             { return string(f) }
func (f ToneLetter) Kind() Kind               { return KindToneLetter }
func (f ToneLetter) Derived() (Feature, bool) { return ToneLetterType, true }

// ToneNumber is a numeric tone marker (Chao-style digits and separator).
type ToneNumber string

const (
	Tone0                ToneNumber = "tone 0"
	Tone1                ToneNumber = "tone 1"
	Tone2                ToneNumber = "tone 2"
	Tone3                ToneNumber = "tone 3"
	Tone4                ToneNumber = "tone 4"
	Tone5                ToneNumber = "tone 5"
	Tone6                ToneNumber = "tone 6"
	Tone7                ToneNumber = "tone 7"
	ToneNumberSeparator  ToneNumber = "tone number separator"
)

const KindToneNumber Kind = "ToneNumber"

func (f ToneNumber) Name() string             { return string(f) }
func (f ToneNumber) Kind() Kind               { return KindToneNumber }
func (f ToneNumber) Derived() (Feature, bool) { return ToneNumberType, true }

// ToneStep is an upstep/downstep marker.
type ToneStep string

const (
	Upstep   ToneStep = "upstep"
	Downstep ToneStep = "downstep"
)

const KindToneStep Kind = "ToneStep"

func (f ToneStep) Name() string             { return string(f) }
func (f ToneStep) Kind() Kind               { return KindToneStep }
func (f ToneStep) Derived() (Feature, bool) { return ToneStepType, true }

func init() {
	registerKind(KindTone, []Feature{
		ExtraHighTone, HighTone, MidTone, LowTone, ExtraLowTone,
		RisingTone, FallingTone, HighMidRisingTone, LowRisingTone,
		HighFallingTone, LowMidFallingTone, PeakingTone, DippingTone,
	})
	registerKind(KindToneType, []Feature{ToneLetterType, ToneNumberType, ToneStepType})
	registerKind(KindToneLetter, []Feature{
		HighToneLetter, HalfHighToneLetter, MidToneLetter, HalfLowToneLetter, LowToneLetter,
	})
	registerKind(KindToneNumber, []Feature{
		Tone0, Tone1, Tone2, Tone3, Tone4, Tone5, Tone6, Tone7, ToneNumberSeparator,
	})
	registerKind(KindToneStep, []Feature{Upstep, Downstep})
}
