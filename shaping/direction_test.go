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

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		r    rune
		want charClass
	}{
		{'a', classLTR},
		{'Z', classLTR},
		{'5', classLTR},
		{0x0627, classRTL}, // Arabic letter alef
		{0x05D0, classRTL}, // Hebrew letter alef
		{0x0660, classLTR}, // Arabic-Indic digit zero stays LTR
		{' ', classNeutral},
		{'.', classNeutral},
	}
	for _, c := range cases {
		if got := classify(c.r); got != c.want {
			t.Errorf("classify(%q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestSegmentRunsSingleLTRRun(t *testing.T) {
	pick := func(r rune) string { return "latin" }
	runs := segmentRuns("hello world", pick)
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
	if runs[0].RTL {
		t.Fatal("plain ASCII text must not be classified RTL")
	}
	if runs[0].Text != "hello world" {
		t.Fatalf("runs[0].Text = %q", runs[0].Text)
	}
}

func TestSegmentRunsSplitsOnDirectionChange(t *testing.T) {
	pick := func(r rune) string { return "f" }
	text := "abc" + string(rune(0x05D0)) + string(rune(0x05D1)) + "def"
	runs := segmentRuns(text, pick)
	if len(runs) != 3 {
		t.Fatalf("len(runs) = %d, want 3 (LTR, RTL, LTR), got %+v", len(runs), runs)
	}
	if runs[0].RTL || runs[2].RTL {
		t.Fatal("surrounding runs must stay LTR")
	}
	if !runs[1].RTL {
		t.Fatal("middle run must be classified RTL")
	}
}

func TestSegmentRunsSplitsOnFontChange(t *testing.T) {
	pick := func(r rune) string {
		if r == 'x' {
			return "special"
		}
		return "default"
	}
	runs := segmentRuns("abxcd", pick)
	if len(runs) != 3 {
		t.Fatalf("len(runs) = %d, want 3, got %+v", len(runs), runs)
	}
	if runs[1].FontKey != "special" {
		t.Fatalf("runs[1].FontKey = %q, want %q", runs[1].FontKey, "special")
	}
}

func TestSegmentRunsNeutralsInheritDirection(t *testing.T) {
	pick := func(r rune) string { return "f" }
	text := string(rune(0x0627)) + "." + string(rune(0x0628))
	runs := segmentRuns(text, pick)
	if len(runs) != 1 {
		t.Fatalf("a neutral surrounded by the same direction must not split the run; got %+v", runs)
	}
}

func TestSegmentRunsEmpty(t *testing.T) {
	if got := segmentRuns("", func(r rune) string { return "f" }); got != nil {
		t.Fatalf("segmentRuns(\"\") = %+v, want nil", got)
	}
}
