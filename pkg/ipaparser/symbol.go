package ipaparser

import (
	"github.com/danmysak/ipaparser/internal/combine"
	"github.com/danmysak/ipaparser/internal/features"
)

// Symbol is a parsed transcription element: its normalized spelling, the
// feature set it carries (nil if the spelling matched nothing known), and,
// for a compound sound or loose tied cluster, its child symbols. Grounded
// on danmysak/ipa-parser's _code/ipa_symbol.py / raw_symbol.py.
type Symbol struct {
	spelling   string
	primary    features.Set
	components []Symbol
}

// String returns the symbol's normalized spelling.
func (s Symbol) String() string {
	return s.spelling
}

// IsKnown reports whether the symbol matched a recognized base form.
func (s Symbol) IsKnown() bool {
	return s.primary != nil
}

// IsSound reports whether the symbol is a consonant, vowel, or compound
// sound.
func (s Symbol) IsSound() bool {
	return s.primary != nil && s.primary.Has(features.Sound)
}

// IsBreak reports whether the symbol is a break (space, hyphen, ellipsis,
// ...).
func (s Symbol) IsBreak() bool {
	return s.primary != nil && s.primary.Has(features.Break)
}

// IsSuprasegmental reports whether the symbol is a stress, tone,
// intonation, or airflow marker.
func (s Symbol) IsSuprasegmental() bool {
	return s.primary != nil && s.primary.Has(features.Suprasegmental)
}

// Features returns the symbol's primary feature set, or (nil, false) if the
// symbol is unknown.
func (s Symbol) Features() (features.Set, bool) {
	if s.primary == nil {
		return nil, false
	}
	return s.primary, true
}

// FeaturesOfKind returns the subset of the primary feature set belonging to
// one of the given kinds, or (nil, false) if the symbol is unknown.
func (s Symbol) FeaturesOfKind(kinds ...features.Kind) (features.Set, bool) {
	if s.primary == nil {
		return nil, false
	}
	return s.primary.Filter(kinds...), true
}

// FeaturesOfKindNamed is FeaturesOfKind for callers that only have the
// kind's string name (identifier or spaced form), e.g. from a config file.
func (s Symbol) FeaturesOfKindNamed(names ...string) (features.Set, bool, error) {
	kinds := make([]features.Kind, len(names))
	for i, name := range names {
		kind, ok := features.FindKind(name)
		if !ok {
			return nil, false, &FeatureKindError{Value: name}
		}
		kinds[i] = kind
	}
	set, ok := s.FeaturesOfKind(kinds...)
	return set, ok, nil
}

// FeaturesForRole returns the first interpretation of the symbol's primary
// feature set (including the primary set itself) containing role, per
// spec.md §4.7, or (nil, false) if the symbol is unknown or no
// interpretation contains it.
func (s Symbol) FeaturesForRole(role features.Feature) (features.Set, bool) {
	if s.primary == nil {
		return nil, false
	}
	return combine.FeaturesForRole(s.primary, role)
}

// FeaturesForRoleNamed is FeaturesForRole for callers that only have the
// feature's string name.
func (s Symbol) FeaturesForRoleNamed(name string) (features.Set, bool, error) {
	role, ok := features.FindFeature(name)
	if !ok {
		return nil, false, &FeatureError{Value: name}
	}
	set, found := s.FeaturesForRole(role)
	return set, found, nil
}

// HasFeature reports whether f is present in the symbol's primary feature
// set.
func (s Symbol) HasFeature(f features.Feature) bool {
	return s.primary != nil && s.primary.Has(f)
}

// Components returns the symbol's child symbols (for a compound sound or a
// loose tied cluster), or nil if the symbol is not compound.
func (s Symbol) Components() []Symbol {
	return s.components
}

// Left returns the first component, if any.
func (s Symbol) Left() (Symbol, bool) {
	if len(s.components) == 0 {
		return Symbol{}, false
	}
	return s.components[0], true
}

// Middle returns the middle component, if the symbol has an odd number of
// components.
func (s Symbol) Middle() (Symbol, bool) {
	if len(s.components) == 0 || len(s.components)%2 == 0 {
		return Symbol{}, false
	}
	return s.components[(len(s.components)-1)/2], true
}

// Right returns the last component, if any.
func (s Symbol) Right() (Symbol, bool) {
	if len(s.components) == 0 {
		return Symbol{}, false
	}
	return s.components[len(s.components)-1], true
}
