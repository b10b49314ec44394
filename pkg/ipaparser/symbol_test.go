package ipaparser

import (
	"testing"

	"github.com/danmysak/ipaparser/internal/features"
)

func mustParseSymbol(t *testing.T, input string) Symbol {
	t.Helper()
	sym, err := ParseSymbol(input, nil)
	if err != nil {
		t.Fatalf("ParseSymbol(%q) error = %v", input, err)
	}
	return sym
}

func TestSymbol_KnownSound(t *testing.T) {
	sym := mustParseSymbol(t, "t")

	if !sym.IsKnown() {
		t.Fatal("IsKnown() = false, want true")
	}
	if !sym.IsSound() {
		t.Error("IsSound() = false, want true")
	}
	if sym.IsBreak() {
		t.Error("IsBreak() = true, want false")
	}
	if sym.IsSuprasegmental() {
		t.Error("IsSuprasegmental() = true, want false")
	}
	if !sym.HasFeature(features.Voiceless) {
		t.Error("HasFeature(Voiceless) = false, want true")
	}
	if !sym.HasFeature(features.Alveolar) {
		t.Error("HasFeature(Alveolar) = false, want true")
	}
	if sym.String() != "t" {
		t.Errorf("String() = %q, want %q", sym.String(), "t")
	}
}

func TestSymbol_Features(t *testing.T) {
	sym := mustParseSymbol(t, "s")

	set, ok := sym.Features()
	if !ok {
		t.Fatal("Features() ok = false, want true")
	}
	if !set.Has(features.Sibilant) || !set.Has(features.Fricative) {
		t.Errorf("Features() = %v, want it to contain Sibilant and Fricative", set.Slice())
	}
}

func TestSymbol_FeaturesOfKind(t *testing.T) {
	sym := mustParseSymbol(t, "s")

	set, ok := sym.FeaturesOfKind(features.KindPlace)
	if !ok {
		t.Fatal("FeaturesOfKind(Place) ok = false, want true")
	}
	want := features.NewSet(features.Alveolar)
	if !set.Equal(want) {
		t.Errorf("FeaturesOfKind(Place) = %v, want %v", set.Slice(), want.Slice())
	}
}

func TestSymbol_FeaturesOfKindNamed(t *testing.T) {
	sym := mustParseSymbol(t, "s")

	t.Run("known kind by spaced name", func(t *testing.T) {
		set, ok, err := sym.FeaturesOfKindNamed("place")
		if err != nil {
			t.Fatalf("FeaturesOfKindNamed(\"place\") error = %v", err)
		}
		if !ok || !set.Has(features.Alveolar) {
			t.Errorf("FeaturesOfKindNamed(\"place\") = %v, ok=%v, want it to contain Alveolar", set.Slice(), ok)
		}
	})

	t.Run("unknown kind name", func(t *testing.T) {
		_, _, err := sym.FeaturesOfKindNamed("nonsense")
		var fke *FeatureKindError
		if err == nil {
			t.Fatal("FeaturesOfKindNamed(\"nonsense\") error = nil, want *FeatureKindError")
		}
		if _, ok := err.(*FeatureKindError); !ok {
			t.Errorf("FeaturesOfKindNamed(\"nonsense\") error type = %T, want %T", err, fke)
		}
	})
}

func TestSymbol_FeaturesForRole(t *testing.T) {
	// "j" is a voiced palatal approximant, reinterpretable as the vowel "i"
	// under the approximant/vowel equivalence (spec.md §4.7).
	sym := mustParseSymbol(t, "j")

	set, ok := sym.FeaturesForRole(features.SimpleVowel)
	if !ok {
		t.Fatal("FeaturesForRole(SimpleVowel) ok = false, want true")
	}
	if !set.Has(features.SimpleVowel) || !set.Has(features.Close) {
		t.Errorf("FeaturesForRole(SimpleVowel) = %v, want it to contain SimpleVowel and Close", set.Slice())
	}

	if _, ok := sym.FeaturesForRole(features.Nasal); ok {
		t.Error("FeaturesForRole(Nasal) ok = true, want false for a palatal approximant")
	}
}

func TestSymbol_FeaturesForRoleNamed(t *testing.T) {
	sym := mustParseSymbol(t, "j")

	t.Run("known feature name", func(t *testing.T) {
		set, ok, err := sym.FeaturesForRoleNamed("close")
		if err != nil {
			t.Fatalf("FeaturesForRoleNamed(\"close\") error = %v", err)
		}
		if !ok || !set.Has(features.Close) {
			t.Errorf("FeaturesForRoleNamed(\"close\") = %v, ok=%v, want it to contain Close", set.Slice(), ok)
		}
	})

	t.Run("unknown feature name", func(t *testing.T) {
		_, _, err := sym.FeaturesForRoleNamed("nonsense")
		if _, ok := err.(*FeatureError); !ok {
			t.Errorf("FeaturesForRoleNamed(\"nonsense\") error type = %T, want *FeatureError", err)
		}
	})
}

func TestSymbol_Unknown(t *testing.T) {
	sym := mustParseSymbol(t, "%")

	if sym.IsKnown() {
		t.Error("IsKnown() = true, want false")
	}
	if _, ok := sym.Features(); ok {
		t.Error("Features() ok = true, want false")
	}
	if sym.IsSound() || sym.IsBreak() || sym.IsSuprasegmental() {
		t.Error("an unknown symbol reported a known category")
	}
}

func TestSymbol_ComponentsOfDanglingDiacritic(t *testing.T) {
	// "ʰt" puts the aspiration diacritic before a letter it cannot attach
	// to from that side, so the whole input fails to reduce to one segment
	// and surfaces as an unknown symbol with its pieces as components
	// (spec.md §6).
	sym := mustParseSymbol(t, "ʰt")

	if sym.IsKnown() {
		t.Fatal("IsKnown() = true, want false for a dangling diacritic")
	}
	components := sym.Components()
	if len(components) != 2 {
		t.Fatalf("len(Components()) = %d, want 2", len(components))
	}
	left, ok := sym.Left()
	if !ok || left.String() != components[0].String() {
		t.Errorf("Left() = %+v, ok=%v, want first component", left, ok)
	}
	right, ok := sym.Right()
	if !ok || right.String() != components[len(components)-1].String() {
		t.Errorf("Right() = %+v, ok=%v, want last component", right, ok)
	}
}

func TestSymbol_MiddleRequiresOddComponentCount(t *testing.T) {
	sym := Symbol{components: []Symbol{{spelling: "a"}, {spelling: "b"}, {spelling: "c"}}}
	mid, ok := sym.Middle()
	if !ok || mid.String() != "b" {
		t.Errorf("Middle() = %+v, ok=%v, want the single middle component", mid, ok)
	}

	even := Symbol{components: []Symbol{{spelling: "a"}, {spelling: "b"}}}
	if _, ok := even.Middle(); ok {
		t.Error("Middle() ok = true, want false for an even component count")
	}
}
