package features

// BreakType classifies textual break symbols (spaces, hyphens, syllable
// breaks, ellipses, and the like).
type BreakType string

const (
	BreakSpace         BreakType = "space"
	BreakHyphen        BreakType = "hyphen"
	BreakLinking       BreakType = "linking"
	BreakSyllableBreak BreakType = "syllable break"
	BreakMinorBreak    BreakType = "minor break"
	BreakMajorBreak    BreakType = "major break"
	BreakEquivalence   BreakType = "equivalence"
	BreakEllipsis      BreakType = "ellipsis"
)

const KindBreakType Kind = "BreakType"

func (f BreakType) Name() string             { return string(f) }
func (f BreakType) Kind() Kind               { return KindBreakType }
func (f BreakType) Derived() (Feature, bool) { return Break, true }

func init() {
	registerKind(KindBreakType, []Feature{
		BreakSpace,
		BreakHyphen,
		BreakLinking,
		BreakSyllableBreak,
		BreakMinorBreak,
		BreakMajorBreak,
		BreakEquivalence,
		BreakEllipsis,
	})
}
