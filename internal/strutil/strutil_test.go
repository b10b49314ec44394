package strutil

import (
	"testing"

	"github.com/danmysak/ipaparser/internal/ipadata"
)

func TestPositionsSplitsCombiningRuns(t *testing.T) {
	s := NFD("pʰa") // p, ʰ (non-combining modifier, its own position), a
	positions := Positions(s)
	if len(positions) != 3 {
		t.Fatalf("expected 3 positions, got %d (%v)", len(positions), positions)
	}
}

func TestPositionsLeadingCombining(t *testing.T) {
	s := NFD("̃a") // combining tilde with no base, then 'a'
	positions := Positions(s)
	if len(positions) != 2 {
		t.Fatalf("expected 2 positions, got %d (%v)", len(positions), positions)
	}
	if positions[0].Runes()[0] != '̃' {
		t.Errorf("expected leading position to start with the combining mark, got %q", positions[0])
	}
}

func TestTieFreeDropsTrailingTies(t *testing.T) {
	ties := map[string]struct{}{"͡": {}}
	p := Position("t͡")
	if got := p.TieFree(ties); got != "t" {
		t.Errorf("TieFree() = %q, want %q", got, "t")
	}
}

func TestExpandRemovesBracketCharactersOnly(t *testing.T) {
	inner := []ipadata.InnerBracket{{Open: "(", Close: ")"}, {Open: "⁽", Close: "⁾"}}
	got, err := ApplyBracketStrategy("bə(j)ɪzʲˈlʲivɨj", Expand, inner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "bəjɪzʲˈlʲivɨj"; got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestStripRemovesBalancedRegions(t *testing.T) {
	inner := []ipadata.InnerBracket{{Open: "(", Close: ")"}, {Open: "⁽", Close: "⁾"}}
	got, err := ApplyBracketStrategy("bə(j)ɪz⁽ʲ⁾ˈlʲivɨj", Strip, inner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "bəɪzˈlʲivɨj"; got != want {
		t.Errorf("Strip() = %q, want %q", got, want)
	}
}

func TestStripLeavesUnbalancedInputUntouched(t *testing.T) {
	inner := []ipadata.InnerBracket{{Open: "(", Close: ")"}}
	input := "a(bc"
	got, err := ApplyBracketStrategy(input, Strip, inner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != input {
		t.Errorf("Strip() on unbalanced input = %q, want unchanged %q", got, input)
	}
}

func TestKeepIsIdentity(t *testing.T) {
	got, err := ApplyBracketStrategy("a(b)c", Keep, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a(b)c" {
		t.Errorf("Keep() = %q, want unchanged", got)
	}
}

func TestBracketStrategyIdempotence(t *testing.T) {
	inner := []ipadata.InnerBracket{{Open: "(", Close: ")"}}
	for _, strategy := range []BracketStrategy{Keep, Expand, Strip} {
		input := "a(b)c(d)e"
		once, err := ApplyBracketStrategy(input, strategy, inner)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", strategy, err)
		}
		twice, err := ApplyBracketStrategy(once, strategy, inner)
		if err != nil {
			t.Fatalf("%s: unexpected error on second pass: %v", strategy, err)
		}
		if once != twice {
			t.Errorf("%s: not idempotent: %q != %q", strategy, once, twice)
		}
	}
}

func TestUnrecognizedBracketStrategyErrors(t *testing.T) {
	if _, err := ApplyBracketStrategy("x", BracketStrategy("bogus"), nil); err == nil {
		t.Error("expected an error for an unrecognized bracket strategy")
	}
}

func TestCombineTiesInsertsBetweenMembers(t *testing.T) {
	got := CombineTies("[aɪ pʰiː eɪ]", [][]string{{"a", "ɪ"}}, "͡", nil)
	want := "[a͡ɪ pʰiː eɪ]"
	if got != want {
		t.Errorf("CombineTies() = %q, want %q", got, want)
	}
}

func TestCombineTiesSkipsWhenFollowedByCombiningMark(t *testing.T) {
	ties := map[string]struct{}{"͡": {}}
	s := "aɪ̯" // 'aɪ' followed by a non-tie combining mark (nonsyllabic)
	got := CombineTies(s, [][]string{{"a", "ɪ"}}, "͡", ties)
	if got != s {
		t.Errorf("CombineTies() = %q, want unchanged %q", got, s)
	}
}

func TestSubstituteAppliesInOrder(t *testing.T) {
	subs := []ipadata.Substitution{{From: ":", To: "ː"}, {From: "g", To: "ɡ"}}
	got := Substitute("/g/", subs)
	if want := "/ɡ/"; got != want {
		t.Errorf("Substitute() = %q, want %q", got, want)
	}
}
