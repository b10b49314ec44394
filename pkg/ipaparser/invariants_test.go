package ipaparser

import (
	"testing"

	"github.com/danmysak/ipaparser/internal/strutil"
)

// TestParse_Idempotent checks that re-parsing a transcription's own String()
// output reproduces it, for every bracket strategy (spec.md §8).
func TestParse_Idempotent(t *testing.T) {
	for _, strategy := range []strutil.BracketStrategy{strutil.Keep, strutil.Expand, strutil.Strip} {
		t.Run(string(strategy), func(t *testing.T) {
			cfg, err := NewConfigWithOptions(WithBrackets(strategy))
			if err != nil {
				t.Fatalf("NewConfigWithOptions() error = %v", err)
			}
			first := mustParse(t, "[t(ʰ)]", cfg)
			second, err := Parse(first.String(), cfg)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", first.String(), err)
			}
			if !first.Equal(second) {
				t.Errorf("re-parsing %q produced %q, want idempotence", first.String(), second.String())
			}
		})
	}
}

// TestParseSymbol_TieRemovalRoundTrip checks that a caller-requested
// combining sequence that fires a compound rule is recoverable as the same
// spelling on a second parse with the tie already present (spec.md §8).
func TestParseSymbol_TieRemovalRoundTrip(t *testing.T) {
	cfg, err := NewConfigWithOptions(WithCombined([][]string{{"t", "s"}}))
	if err != nil {
		t.Fatalf("NewConfigWithOptions() error = %v", err)
	}
	combined, err := ParseSymbol("ts", cfg)
	if err != nil {
		t.Fatalf("ParseSymbol(\"ts\") error = %v", err)
	}
	again, err := ParseSymbol(combined.String(), nil)
	if err != nil {
		t.Fatalf("ParseSymbol(%q) error = %v", combined.String(), err)
	}
	if !again.IsKnown() || again.String() != combined.String() {
		t.Errorf("re-parsing %q gave %+v, want the same known affricate", combined.String(), again)
	}
}

func TestParse_NilConfigUsesDefaults(t *testing.T) {
	a := mustParse(t, "[a]", nil)
	defaults, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	b := mustParse(t, "[a]", defaults)
	if !a.Equal(b) {
		t.Error("Parse(nil) and Parse(NewConfig()) disagree")
	}
}

func TestParse_PropagatesConfigValidationError(t *testing.T) {
	bad := &Config{Brackets: "loud"}
	if _, err := Parse("[a]", bad); err == nil {
		t.Error("Parse() with an invalid config: error = nil, want non-nil")
	}
	if _, err := ParseSymbol("a", bad); err == nil {
		t.Error("ParseSymbol() with an invalid config: error = nil, want non-nil")
	}
}
