// Package ipaparser is the public API: parsing entry points, the Config
// type, the IPA transcription and Symbol record types, and the typed error
// taxonomy. Grounded on the teacher's pkg/config.go (defaults + Validate +
// functional options) and danmysak/ipa-parser's _code/ipa_config.py.
package ipaparser

import (
	"fmt"

	"github.com/creasty/defaults"

	"github.com/danmysak/ipaparser/internal/strutil"
)

type (
	// Config holds the parameters that shape how input is prepared before
	// parsing: substitution, bracket handling, and caller-requested tie
	// combining.
	Config struct {
		// Substitutions enables the static substitution table (e.g. ":" ->
		// "ː", "g" -> "ɡ"), applied before and after bracket handling.
		Substitutions bool `default:"false"`

		// Brackets selects how inner (optional-content) brackets are
		// handled: keep, expand, or strip.
		Brackets strutil.BracketStrategy `default:"keep"`

		// Combined lists sound sequences that should be treated as tied
		// even without explicit tie marks in the input. Each entry must
		// have at least two non-empty, non-combining-leading members.
		Combined [][]string
	}

	// ConfigOption is a functional option for configuring a Config.
	ConfigOption func(*Config)
)

// NewConfig returns a Config with its defaults applied (substitutions off,
// brackets kept).
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set defaults: %w", err)
	}
	return cfg, nil
}

// NewConfigWithOptions returns a Config with defaults applied, then the
// given options, validating the result.
func NewConfigWithOptions(opts ...ConfigOption) (*Config, error) {
	cfg, err := NewConfig()
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that Brackets names a recognized strategy and that every
// Combined sequence is well-formed, per spec.md §6/§7.
func (c *Config) Validate() error {
	switch c.Brackets {
	case strutil.Keep, strutil.Expand, strutil.Strip:
	default:
		return &BracketStrategyError{
			Value: string(c.Brackets),
			Valid: []string{string(strutil.Keep), string(strutil.Expand), string(strutil.Strip)},
		}
	}
	for _, members := range c.Combined {
		if len(members) < 2 {
			return &CombinedLengthError{Sequence: members}
		}
		for _, member := range members {
			runes := []rune(strutil.NFD(member))
			if len(runes) == 0 {
				return &CombinedSoundError{Sound: member}
			}
			if strutil.IsCombiningRune(runes[0]) {
				return &CombinedSoundError{Sound: member}
			}
		}
	}
	return nil
}

// WithSubstitutions sets whether the substitution table is applied.
func WithSubstitutions(enabled bool) ConfigOption {
	return func(c *Config) { c.Substitutions = enabled }
}

// WithBrackets sets the inner-bracket handling strategy.
func WithBrackets(strategy strutil.BracketStrategy) ConfigOption {
	return func(c *Config) { c.Brackets = strategy }
}

// WithCombined sets the caller-requested tie-combining sequences.
func WithCombined(combined [][]string) ConfigOption {
	return func(c *Config) { c.Combined = combined }
}
