// Package features implements the closed phonological feature taxonomy:
// kinds, their values, the derivation hierarchy between kinds, and
// immutable sets of features.
package features

import "sort"

// Feature is one value drawn from a closed, enumerated taxonomy (e.g.
// Place.BILABIAL, Manner.STOP, Voicing.VOICED). Every concrete feature type
// (Place, Manner, ...) implements this interface with value receivers, so
// Feature values compare equal by (dynamic type, value) and can be used
// directly as map keys.
type Feature interface {
	// Name is the canonical string spelling of the feature, e.g. "voiced".
	Name() string
	// Kind identifies which closed enumeration this feature belongs to.
	Kind() Kind
	// Derived returns the single feature this one derives into under the
	// hierarchy (e.g. Place.BILABIAL -> PlaceCategory.LABIAL), or
	// (nil, false) if this feature is already at the top of its chain.
	Derived() (Feature, bool)
}

// Set is an immutable, unordered collection of features. The zero value is
// an empty set. All mutating-looking methods return a new Set and leave the
// receiver untouched.
type Set map[Feature]struct{}

// NewSet builds a Set from the given features.
func NewSet(fs ...Feature) Set {
	set := make(Set, len(fs))
	for _, f := range fs {
		set[f] = struct{}{}
	}
	return set
}

// Has reports whether f is a member of the set.
func (s Set) Has(f Feature) bool {
	_, ok := s[f]
	return ok
}

// Add returns a new set with f included.
func (s Set) Add(f Feature) Set {
	result := make(Set, len(s)+1)
	for k := range s {
		result[k] = struct{}{}
	}
	result[f] = struct{}{}
	return result
}

// Union returns a new set containing every feature present in either set.
func (s Set) Union(other Set) Set {
	result := make(Set, len(s)+len(other))
	for k := range s {
		result[k] = struct{}{}
	}
	for k := range other {
		result[k] = struct{}{}
	}
	return result
}

// Without returns a new set with the given features removed.
func (s Set) Without(fs ...Feature) Set {
	drop := NewSet(fs...)
	result := make(Set, len(s))
	for k := range s {
		if !drop.Has(k) {
			result[k] = struct{}{}
		}
	}
	return result
}

// Intersect returns the features present in both sets.
func (s Set) Intersect(other Set) Set {
	result := make(Set)
	for k := range s {
		if other.Has(k) {
			result[k] = struct{}{}
		}
	}
	return result
}

// IsDisjoint reports whether the two sets share no features.
func (s Set) IsDisjoint(other Set) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for k := range small {
		if big.Has(k) {
			return false
		}
	}
	return true
}

// Filter returns the subset of features whose Kind is one of kinds.
func (s Set) Filter(kinds ...Kind) Set {
	index := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		index[k] = struct{}{}
	}
	result := make(Set)
	for f := range s {
		if _, ok := index[f.Kind()]; ok {
			result[f] = struct{}{}
		}
	}
	return result
}

// Equal reports whether both sets contain exactly the same features.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// Len returns the number of features in the set.
func (s Set) Len() int {
	return len(s)
}

// Slice returns the set's members sorted by name, for deterministic output.
func (s Set) Slice() []Feature {
	result := make([]Feature, 0, len(s))
	for f := range s {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result
}

// extendOne returns f together with every feature in its derivation chain.
func extendOne(f Feature) Set {
	set := NewSet(f)
	current := f
	for {
		derived, ok := current.Derived()
		if !ok {
			return set
		}
		set = set.Add(derived)
		current = derived
	}
}

// Extend returns the reflexive-transitive closure of the set under
// derivation: every feature present, plus every feature each one derives
// into. A feature set that equals its own Extend() is "closed".
func (s Set) Extend() Set {
	result := make(Set)
	for f := range s {
		for d := range extendOne(f) {
			result[d] = struct{}{}
		}
	}
	return result
}

// Equivalent reports whether a and b agree when restricted to kinds.
func Equivalent(kinds []Kind, a, b Set) bool {
	return a.Filter(kinds...).Equal(b.Filter(kinds...))
}
