package ipaparser

import (
	"github.com/danmysak/ipaparser/internal/catalog"
	"github.com/danmysak/ipaparser/internal/ipadata"
	"github.com/danmysak/ipaparser/internal/segment"
	"github.com/danmysak/ipaparser/internal/strutil"
)

// Load eagerly initializes the static tables and the base-symbol catalog,
// so that the first Parse or ParseSymbol call does not pay for it. Only the
// first call does the work. A malformed table is returned as an error; an
// ambiguous catalog panics, as it would on the first parse.
func Load() error {
	if err := ipadata.Load(); err != nil {
		return err
	}
	catalog.Get()
	return nil
}

// Parse parses a full transcription: input must be framed by one of the
// recognized outer bracket pairs (spec.md §4.8). A nil config uses
// NewConfig's defaults.
func Parse(input string, config *Config) (IPA, error) {
	cfg, err := resolveConfig(config)
	if err != nil {
		return IPA{}, err
	}
	data := ipadata.Get()

	ob, ok := matchOuterBrackets(input, data.OuterBrackets)
	if !ok {
		return IPA{}, &EnclosingError{Transcription: input}
	}
	rawBody := input[len(ob.Open) : len(input)-len(ob.Close)]

	body, err := prepareBody(rawBody, cfg, data)
	if err != nil {
		return IPA{}, err
	}
	positions := strutil.Positions(body)
	segments := segment.Build(positions, data, segment.Options{})

	symbols := make([]Symbol, len(segments))
	for i, seg := range segments {
		symbols[i] = symbolFromSegment(seg, positions)
	}

	return IPA{
		transcriptionType: ob.Type,
		leftBracket:       ob.Open,
		rightBracket:      ob.Close,
		symbols:           symbols,
	}, nil
}

// ParseSymbol parses a single standalone sound or auxiliary symbol: input
// is prepared exactly as Parse's body, without requiring outer brackets. If
// the whole input does not reduce to one top-level segment, the result is
// an unknown symbol whose components are whatever dangling pieces matched
// (spec.md §6).
func ParseSymbol(input string, config *Config) (Symbol, error) {
	cfg, err := resolveConfig(config)
	if err != nil {
		return Symbol{}, err
	}
	data := ipadata.Get()

	body, err := prepareBody(input, cfg, data)
	if err != nil {
		return Symbol{}, err
	}
	positions := strutil.Positions(body)
	segments := segment.Build(positions, data, segment.Options{})

	if len(segments) == 1 {
		return symbolFromSegment(segments[0], positions), nil
	}

	components := make([]Symbol, len(segments))
	for i, seg := range segments {
		components[i] = symbolFromSegment(seg, positions)
	}
	return Symbol{spelling: strutil.Join(positions), components: components}, nil
}

func resolveConfig(config *Config) (*Config, error) {
	if config == nil {
		return NewConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// prepareBody runs spec.md §4.1's normalization pipeline: NFD, an optional
// substitution pass, bracket handling, caller-requested tie combining, then
// a final optional substitution pass so substitutions both prepare input
// for combining and normalize the result.
func prepareBody(raw string, cfg *Config, data *ipadata.Data) (string, error) {
	s := strutil.NFD(raw)
	if cfg.Substitutions {
		s = strutil.Substitute(s, data.Substitutions)
	}
	s, err := strutil.ApplyBracketStrategy(s, cfg.Brackets, data.InnerBrackets)
	if err != nil {
		return "", err
	}
	s = strutil.CombineTies(s, cfg.Combined, data.MainTie, data.Ties)
	if cfg.Substitutions {
		s = strutil.Substitute(s, data.Substitutions)
	}
	return s, nil
}

// symbolFromSegment converts one segment.Segment into its Symbol record,
// recursively converting components.
func symbolFromSegment(seg segment.Segment, positions []strutil.Position) Symbol {
	spelling := strutil.Join(positions[seg.Start:seg.End])
	var components []Symbol
	if len(seg.Components) > 0 {
		components = make([]Symbol, len(seg.Components))
		for i, c := range seg.Components {
			components[i] = symbolFromSegment(c, positions)
		}
	}
	return Symbol{
		spelling:   spelling,
		primary:    seg.Features,
		components: components,
	}
}
