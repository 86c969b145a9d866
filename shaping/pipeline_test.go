// Copyright 2026 The pdfkit Authors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shaping

import (
	"testing"

	"github.com/paperglyph/pdfkit/content"
	"github.com/paperglyph/pdfkit/font"
)

func TestComposeSequenceLTR(t *testing.T) {
	xs := composeSequence([]float64{10, 20, 5}, 0, 2, false)
	want := []float64{0, 12, 34}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("composeSequence LTR = %v, want %v", xs, want)
		}
	}
}

func TestComposeSequenceRTL(t *testing.T) {
	// Anchored at the right edge (100): the first item's left edge sits at
	// 100-10=90, the next is placed to its left across the gap, and so on.
	xs := composeSequence([]float64{10, 20, 5}, 100, 2, true)
	want := []float64{90, 68, 61}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("composeSequence RTL = %v, want %v", xs, want)
		}
	}
}

func TestComposeSequenceEmpty(t *testing.T) {
	xs := composeSequence(nil, 0, 2, false)
	if len(xs) != 0 {
		t.Fatalf("composeSequence(nil) = %v, want empty", xs)
	}
}

func TestBreakLinesNoWrapWhenWidthZero(t *testing.T) {
	words := []wordUnit{{width: 10}, {width: 20}, {width: 1000}}
	lines := (&Pipeline{}).breakLines(words, 0, 2)
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1 when availWidth is 0 (no wrapping)", len(lines))
	}
}

func TestBreakLinesWrapsOnOverflow(t *testing.T) {
	words := []wordUnit{{width: 40}, {width: 40}, {width: 40}}
	lines := (&Pipeline{}).breakLines(words, 90, 5)
	// 40 + 5 + 40 = 85 fits; adding the third word (85+5+40=130) overflows.
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2, got %+v", len(lines), lines)
	}
	if len(lines[0].words) != 2 || len(lines[1].words) != 1 {
		t.Fatalf("unexpected line split: %+v", lines)
	}
	if !lines[1].isLast {
		t.Fatal("the final line must be marked isLast")
	}
	if lines[0].isLast {
		t.Fatal("only the final line must be marked isLast")
	}
}

func TestBreakLinesSingleOverlongWordNeverSplit(t *testing.T) {
	words := []wordUnit{{width: 1000}}
	lines := (&Pipeline{}).breakLines(words, 90, 5)
	if len(lines) != 1 || len(lines[0].words) != 1 {
		t.Fatalf("a single word must never be split across lines: %+v", lines)
	}
}

func TestAnnotateSpaceClusters(t *testing.T) {
	text := "a b"
	glyphs := []ShapedGlyph{
		{ClusterStart: 0},
		{ClusterStart: 1},
		{ClusterStart: 2},
	}
	out := annotateSpaceClusters(glyphs, text)
	if out[0].isSpace || out[2].isSpace {
		t.Fatal("non-space clusters must not be flagged")
	}
	if !out[1].isSpace {
		t.Fatal("the space cluster must be flagged")
	}
}

func TestDrawFallsBackToStandardFontWhenNoFontResolves(t *testing.T) {
	// A zero-value Pipeline has no registered fonts at all: every run
	// must fall back to the standard font instead of vanishing.
	p := &Pipeline{}
	cs := content.New()

	if err := p.Draw(cs, "hi", 0, 0, Style{Size: 12}); err != nil {
		t.Fatalf("Draw returned an error instead of falling back: %v", err)
	}

	names := cs.FontNames()
	if len(names) != 1 || names[0] != font.StandardFontResourceKey {
		t.Fatalf("FontNames() = %v, want only %q", names, font.StandardFontResourceKey)
	}
}

func TestStandardFallbackWidthMatchesByteCount(t *testing.T) {
	w := standardFallbackWidth("MM", 10)
	want := font.StandardAdvance('M') * 10 * 2
	if w != want {
		t.Fatalf("standardFallbackWidth = %v, want %v", w, want)
	}
}

func TestStandardFallbackBytesSubstitutesNonLatin1(t *testing.T) {
	got := standardFallbackBytes("a" + string(rune(0x4e2d)))
	want := []byte{'a', '?'}
	if string(got) != string(want) {
		t.Fatalf("standardFallbackBytes = %v, want %v", got, want)
	}
}

func TestClusterTextForMultiGlyphCluster(t *testing.T) {
	// Two glyphs sharing ClusterStart 0 (the "fi" ligature), one glyph at 2.
	text := "fi!"
	glyphs := []annotatedGlyph{
		{ShapedGlyph: ShapedGlyph{ClusterStart: 0}},
		{ShapedGlyph: ShapedGlyph{ClusterStart: 0}},
		{ShapedGlyph: ShapedGlyph{ClusterStart: 2}},
	}
	if got := clusterTextFor(text, glyphs, 0); got != "fi" {
		t.Fatalf("clusterTextFor(first glyph of cluster) = %q, want %q", got, "fi")
	}
	if got := clusterTextFor(text, glyphs, 1); got != "" {
		t.Fatalf("clusterTextFor(second glyph of cluster) = %q, want empty", got)
	}
	if got := clusterTextFor(text, glyphs, 2); got != "!" {
		t.Fatalf("clusterTextFor(last glyph) = %q, want %q", got, "!")
	}
}
