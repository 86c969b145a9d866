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
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// BBox is a font or glyph bounding box in 1000-unit glyph space.
type BBox struct {
	LLx, LLy, URx, URy float64
}

// Descriptor holds the subset of PDF FontDescriptor fields (section 9.8.1)
// that are computable from a TrueType file's head/hhea/hmtx/OS2 tables.
type Descriptor struct {
	FontName    string // subset-tag-prefixed PostScript name, e.g. "ABCDEF+Arial"
	Flags       Flags
	FontBBox    BBox
	ItalicAngle float64
	Ascent      float64
	Descent     float64 // negative
	CapHeight   float64
	StemV       float64
	MissingWidth float64
}

// computeDescriptor derives the FontDescriptor fields from the sfnt tables,
// scaling every metric to the 1000-units-per-em space PDF descriptors use
// regardless of the font's native unitsPerEm.
func (e *Embedder) computeDescriptor() *Descriptor {
	ppem := fixed.Int26_6(e.upem * 64)
	toThousand := func(v fixed.Int26_6) float64 {
		return float64(v) / 64 * 1000 / e.upem
	}

	m, err := e.face.Metrics(&e.buf, ppem, font.HintingNone)
	if err != nil {
		m = sfnt.Metrics{}
	}
	bounds, err := e.face.Bounds(&e.buf, ppem, font.HintingNone)
	if err != nil {
		bounds = fixed.Rectangle26_6{}
	}

	// A handful of sample glyphs (space, digit zero, 'i', 'm') is a
	// cheap, usually-correct proxy for the font-wide IsFixedPitch flag
	// without walking every glyph in the font.
	fixedPitch := true
	var sample float64 = -1
	for _, r := range []rune{' ', '0', 'i', 'm'} {
		gid, gerr := e.GlyphIndex(r)
		if gerr != nil || gid == 0 {
			continue
		}
		adv, aerr := e.AdvanceWidth(gid)
		if aerr != nil {
			continue
		}
		if sample < 0 {
			sample = adv
		} else if adv != sample {
			fixedPitch = false
		}
	}

	return &Descriptor{
		Flags: deriveFlags(fixedPitch, false),
		FontBBox: BBox{
			LLx: toThousand(bounds.Min.X),
			LLy: toThousand(bounds.Min.Y),
			URx: toThousand(bounds.Max.X),
			URy: toThousand(bounds.Max.Y),
		},
		Ascent:    toThousand(m.Ascent),
		Descent:   -toThousand(m.Descent),
		CapHeight: toThousand(m.CapHeight),
		StemV:     80, // no direct sfnt signal; 80 is the common default for non-bold text
	}
}
