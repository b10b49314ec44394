package features

import "strings"

// Kind identifies a closed enumeration of Feature values (e.g. "Place",
// "Manner"). Its string value is the identifier form ("PlaceCategory");
// Spaced derives the spaced-lower form ("place category") algorithmically,
// the way the teacher's phonid package turns "CustomX" into a human label.
type Kind string

// Spaced returns the spaced, lower-cased form of the kind's identifier.
func (k Kind) Spaced() string {
	return upperCamelToSpaces(string(k))
}

// Identifier returns the kind's identifier form, e.g. "PlaceCategory".
func (k Kind) Identifier() string {
	return string(k)
}

func upperCamelToSpaces(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var (
	kindValues       = map[Kind][]Feature{}
	featureByName    = map[string]Feature{}
	kindByIdentifier = map[string]Kind{}
)

// registerKind records every value of a kind in the package-wide lookup
// tables. Called once per kind from that kind's file-level init().
func registerKind(kind Kind, values []Feature) {
	if _, exists := kindValues[kind]; exists {
		panic("features: kind registered twice: " + kind.Identifier())
	}
	kindValues[kind] = values
	kindByIdentifier[kind.Identifier()] = kind
	kindByIdentifier[kind.Spaced()] = kind
	for _, f := range values {
		if _, exists := featureByName[f.Name()]; exists {
			panic("features: feature name registered twice: " + f.Name())
		}
		featureByName[f.Name()] = f
	}
}

// FindFeature looks up a feature by its canonical name, e.g. "voiced".
func FindFeature(name string) (Feature, bool) {
	f, ok := featureByName[name]
	return f, ok
}

// FindKind looks up a kind by either its identifier or spaced form.
func FindKind(name string) (Kind, bool) {
	k, ok := kindByIdentifier[name]
	return k, ok
}

// KindValues returns every feature belonging to kind, in declaration order.
func KindValues(kind Kind) []Feature {
	return kindValues[kind]
}

// AllKinds returns every registered kind, for documentation/enumeration.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, len(kindValues))
	for k := range kindValues {
		kinds = append(kinds, k)
	}
	return kinds
}
