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

package font

import (
	"testing"

	"github.com/paperglyph/pdfkit/pdfobj"
)

func TestStandardAdvanceKnownCodePoint(t *testing.T) {
	if got := StandardAdvance('M'); got != 0.833 {
		t.Fatalf("StandardAdvance('M') = %v, want 0.833", got)
	}
}

func TestStandardAdvanceUnknownUsesDefault(t *testing.T) {
	got := StandardAdvance(0)
	want := float64(StandardDefaultWidth) / 1000
	if got != want {
		t.Fatalf("StandardAdvance(0) = %v, want default %v", got, want)
	}
}

func TestStandardFontDictShape(t *testing.T) {
	d := StandardFontDict()
	if d["Subtype"] != pdfobj.Name("Type1") {
		t.Fatalf("Subtype = %v, want /Type1", d["Subtype"])
	}
	if d["BaseFont"] != pdfobj.Name(StandardFontName) {
		t.Fatalf("BaseFont = %v, want /%s", d["BaseFont"], StandardFontName)
	}
	if _, hasDescriptor := d["FontDescriptor"]; hasDescriptor {
		t.Fatal("the standard font must not carry a FontDescriptor")
	}
}
