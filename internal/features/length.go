package features

// Length marks segment duration beyond the unmarked default.
type Length string

const (
	ExtraShort Length = "extra-short"
	HalfLong   Length = "half-long"
	Long       Length = "long"
	ExtraLong  Length = "extra-long"
)

const KindLength Kind = "Length"

func (f Length) Name() string             { return string(f) }
func (f Length) Kind() Kind               { return KindLength }
func (f Length) Derived() (Feature, bool) { return nil, false }

func init() {
	registerKind(KindLength, []Feature{ExtraShort, HalfLong, Long, ExtraLong})
}
