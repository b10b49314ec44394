package segment

import (
	"testing"

	"github.com/danmysak/ipaparser/internal/catalog"
	"github.com/danmysak/ipaparser/internal/features"
	"github.com/danmysak/ipaparser/internal/ipadata"
	"github.com/danmysak/ipaparser/internal/strutil"
)

func build(t *testing.T, s string) []Segment {
	t.Helper()
	data := ipadata.Get()
	catalog.Get() // force catalog construction before relying on its matcher
	positions := strutil.Positions(strutil.NFD(s))
	return Build(positions, data, Options{})
}

func TestBuildMatchesALoneLetter(t *testing.T) {
	segments := build(t, "t")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	seg := segments[0]
	if !seg.Known || seg.Features == nil {
		t.Fatal("expected a known segment with features")
	}
	if !seg.Features.Has(features.Stop) || !seg.Features.Has(features.Alveolar) {
		t.Errorf("unexpected features: %v", seg.Features.Slice())
	}
	if seg.Start != 0 || seg.End != 1 {
		t.Errorf("unexpected span: [%d,%d)", seg.Start, seg.End)
	}
}

func TestBuildExpandsAPalatalizationMark(t *testing.T) {
	// "ʲ" (palatalization) is a separate, non-combining position that the
	// catalog never matches on its own; it can only be absorbed by
	// outward expansion onto the preceding consonant.
	segments := build(t, "tʲ")
	if len(segments) != 1 {
		t.Fatalf("expected the mark to be absorbed into one segment, got %d segments", len(segments))
	}
	seg := segments[0]
	if !seg.Known || seg.Features == nil {
		t.Fatal("expected a known segment with features")
	}
	if !seg.Features.Has(features.Palatalized) {
		t.Errorf("expected palatalized, got %v", seg.Features.Slice())
	}
	if seg.Start != 0 || seg.End != 2 {
		t.Errorf("unexpected span: [%d,%d)", seg.Start, seg.End)
	}
}

func TestBuildCombinesATiedAffricate(t *testing.T) {
	segments := build(t, "t͡s")
	if len(segments) != 1 {
		t.Fatalf("expected one compound segment, got %d", len(segments))
	}
	seg := segments[0]
	if !seg.Known || seg.Features == nil {
		t.Fatal("expected a combined affricate with a top-level feature set")
	}
	if !seg.Features.Has(features.Affricate) || !seg.Features.Has(features.AffricateConsonant) {
		t.Errorf("expected affricate features, got %v", seg.Features.Slice())
	}
	if len(seg.Components) != 2 {
		t.Errorf("expected 2 components, got %d", len(seg.Components))
	}
}

func TestBuildLeavesAnUnmatchedCodepointAsAGap(t *testing.T) {
	segments := build(t, "t1")
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if !segments[0].Known {
		t.Error("expected the first segment to be the matched letter")
	}
	if segments[1].Known {
		t.Error("expected the second segment to be an unmatched gap")
	}
}

func TestBuildGroupsATieWithoutACombinerRuleAsALooseCluster(t *testing.T) {
	// "m" (bilabial nasal) and "i" (close front vowel) tied together
	// satisfy no compound-combiner rule, so they stay a loose cluster
	// with no top-level feature set.
	segments := build(t, "m͡i")
	if len(segments) != 1 {
		t.Fatalf("expected one grouped segment, got %d", len(segments))
	}
	seg := segments[0]
	if !seg.Known {
		t.Fatal("expected the cluster to be known (its members matched)")
	}
	if seg.Features != nil {
		t.Errorf("expected no top-level feature set, got %v", seg.Features.Slice())
	}
	if len(seg.Components) != 2 {
		t.Errorf("expected 2 components, got %d", len(seg.Components))
	}
}
