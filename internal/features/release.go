package features

// Release marks the release quality of a stop consonant.
type Release string

const (
	NoAudibleRelease                        Release = "no audible release"
	NasalRelease                            Release = "nasal release"
	LateralRelease                          Release = "lateral release"
	VoicelessDentalFricativeRelease         Release = "voiceless dental fricative release"
	VoicelessAlveolarSibilantFricativeRelease Release = "voiceless alveolar sibilant fricative release"
	VoicelessVelarFricativeRelease          Release = "voiceless velar fricative release"
)

const KindRelease Kind = "Release"

func (f Release) Name() string             { return string(f) }
func (f Release) Kind() Kind               { return KindRelease }
func (f Release) Derived() (Feature, bool) { return nil, false }

func init() {
	registerKind(KindRelease, []Feature{
		NoAudibleRelease,
		NasalRelease,
		LateralRelease,
		VoicelessDentalFricativeRelease,
		VoicelessAlveolarSibilantFricativeRelease,
		VoicelessVelarFricativeRelease,
	})
}
