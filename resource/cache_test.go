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

package resource

import (
	"testing"

	"github.com/paperglyph/pdfkit/pdfobj"
)

func TestAddOpacityInterns(t *testing.T) {
	w := pdfobj.NewObjectWriter()
	c := NewCache(nil)

	n1 := c.AddOpacity(w, 0.5)
	n2 := c.AddOpacity(w, 0.501) // rounds to the same whole percent
	n3 := c.AddOpacity(w, 0.75)

	if n1 != n2 {
		t.Errorf("expected same ExtGState name for 0.50 and 0.501, got %q and %q", n1, n2)
	}
	if n1 == n3 {
		t.Errorf("expected distinct names for distinct opacities, got %q for both", n1)
	}
	if n1 != "GS50" {
		t.Errorf("expected name GS50, got %q", n1)
	}
}

func TestAddJPEGInterns(t *testing.T) {
	w := pdfobj.NewObjectWriter()
	c := NewCache(nil)

	data := []byte{0xFF, 0xD8, 0xFF, 0xD9} // not a valid JPEG, only used as a byte key here
	n1, err := c.AddJPEG(w, data, 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	n2, err := c.AddJPEG(w, data, 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	if n1 != n2 {
		t.Errorf("expected the same image name for identical bytes, got %q and %q", n1, n2)
	}
}

func TestAddShadingInterns(t *testing.T) {
	w := pdfobj.NewObjectWriter()
	c := NewCache(nil)

	stops := []Stop{{Offset: 0, R: 1, G: 0, B: 0}, {Offset: 1, R: 0, G: 0, B: 1}}
	n1 := c.AddShading(w, ShadingAxial, []float64{0, 0, 1, 1}, stops)
	n2 := c.AddShading(w, ShadingAxial, []float64{0, 0, 1, 1}, stops)
	if n1 != n2 {
		t.Errorf("expected identical (kind,coords,stops) to intern to one shading, got %q and %q", n1, n2)
	}
}

func TestRefByName(t *testing.T) {
	w := pdfobj.NewObjectWriter()
	c := NewCache(nil)

	opacityName := c.AddOpacity(w, 0.3)
	shadingName := c.AddShading(w, ShadingRadial, []float64{0, 0, 0, 1, 1, 1},
		[]Stop{{Offset: 0, R: 1, G: 1, B: 1}, {Offset: 1, R: 0, G: 0, B: 0}})

	if _, ok := c.RefByName(opacityName); !ok {
		t.Fatalf("RefByName(%q) not found among interned opacity groups", opacityName)
	}
	if _, ok := c.RefByName(shadingName); !ok {
		t.Fatalf("RefByName(%q) not found among interned shadings", shadingName)
	}
	if _, ok := c.RefByName("GS999"); ok {
		t.Fatal("RefByName must report false for a name that was never interned")
	}
}
