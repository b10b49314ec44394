package features

// SymbolType is the top of the derivation hierarchy: every symbol that
// carries features is ultimately a sound, a suprasegmental, or a break.
type SymbolType string

const (
	Sound          SymbolType = "sound"
	Suprasegmental SymbolType = "suprasegmental"
	Break          SymbolType = "break"
	Unknown        SymbolType = "unknown"
)

const KindSymbolType Kind = "SymbolType"

func (f SymbolType) Name() string              { return string(f) }
func (f SymbolType) Kind() Kind                { return KindSymbolType }
func (f SymbolType) Derived() (Feature, bool)  { return nil, false }

func init() {
	registerKind(KindSymbolType, []Feature{Sound, Suprasegmental, Break, Unknown})
}
