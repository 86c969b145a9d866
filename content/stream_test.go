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

package content

import (
	"strings"
	"testing"
)

func TestSetColor(t *testing.T) {
	cases := []struct {
		color Color
		fill  string
		stroke string
	}{
		{Gray(0.8), "0.8 g\n", "0.8 G\n"},
		{RGB(0.1, 0.2, 0.3), "0.1 0.2 0.3 rg\n", "0.1 0.2 0.3 RG\n"},
		{CMYK(0.1, 0.2, 0.3, 0.4), "0.1 0.2 0.3 0.4 k\n", "0.1 0.2 0.3 0.4 K\n"},
	}
	for _, c := range cases {
		s := New()
		s.SetFillColor(c.color)
		if got := string(s.Bytes()); got != c.fill {
			t.Errorf("fill: got %q, want %q", got, c.fill)
		}

		s = New()
		s.SetStrokeColor(c.color)
		if got := string(s.Bytes()); got != c.stroke {
			t.Errorf("stroke: got %q, want %q", got, c.stroke)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#fff", RGB(1, 1, 1), true},
		{"#FF0000", RGB(1, 0, 0), true},
		{"red", RGB(1, 0, 0), true},
		{"cmyk(10%, 20%, 30%, 40%)", CMYK(0.1, 0.2, 0.3, 0.4), true},
		{"not-a-color", nil, false},
	}
	for _, c := range cases {
		got, ok := ParseColor(c.in)
		if ok != c.ok {
			t.Fatalf("ParseColor(%q) ok = %v, want %v", c.in, ok, c.ok)
		}
		if ok && got.setFill() != c.want.setFill() {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got.setFill(), c.want.setFill())
		}
	}
}

func TestBalancedState(t *testing.T) {
	s := New()
	s.SaveState()
	s.DrawTextLiteral([]byte("Hello"), false, "F1", 12, 72, 800, nil)
	s.RestoreState()

	if !s.Balanced() {
		t.Fatal("expected balanced q/Q and BT/ET")
	}

	out := string(s.Bytes())
	if strings.Count(out, "q") != strings.Count(out, "Q") {
		t.Fatal("q/Q count mismatch in emitted bytes")
	}
	if strings.Count(out, "BT") != strings.Count(out, "ET") {
		t.Fatal("BT/ET count mismatch in emitted bytes")
	}
}

func TestDrawImageMapsUnitSquare(t *testing.T) {
	s := New()
	s.DrawImage("I1", 10, 20, 100, 50)
	want := "q 100 0 0 50 10 20 cm /I1 Do Q\n"
	if got := string(s.Bytes()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !s.xobjects["I1"] {
		t.Error("expected I1 to be registered as a used XObject")
	}
}
