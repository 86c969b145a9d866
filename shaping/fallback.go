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
	"github.com/paperglyph/pdfkit/font"
)

// SimpleShaper is a pragmatic Shaper backed directly by the embedded
// font's own cmap and hmtx tables: one glyph per Unicode scalar value (no
// ligatures, no kerning, no mark positioning), reordered into visual order
// for RTL by a plain reversal. It exists so the pipeline has somewhere to
// go without an external HarfBuzz-class shaper wired in; a
// synchronous, non-complex shaper implementation is an equally valid
// "shaper must be opened before any text draw" contract.
type SimpleShaper struct{}

type simpleFace struct {
	embedder *font.Embedder
}

// OpenEmbedder adapts an already-parsed *font.Embedder into a Face,
// avoiding a second parse of the same font bytes.
func (SimpleShaper) OpenEmbedder(e *font.Embedder) Face {
	return &simpleFace{embedder: e}
}

func (s SimpleShaper) Open(fontBytes []byte) (Face, error) {
	e, err := font.NewEmbedder(fontBytes, "")
	if err != nil {
		return nil, err
	}
	return &simpleFace{embedder: e}, nil
}

func (s SimpleShaper) GlyphID(face Face, codepoint rune) (uint32, error) {
	f := face.(*simpleFace)
	gid, err := f.embedder.GlyphIndex(codepoint)
	return uint32(gid), err
}

func (s SimpleShaper) Shape(face Face, text string, dir Direction) ([]ShapedGlyph, error) {
	f := face.(*simpleFace)

	var glyphs []ShapedGlyph
	for i, r := range text {
		gid, err := f.embedder.GlyphIndex(r)
		if err != nil {
			gid = 0
		}
		adv, err := f.embedder.AdvanceWidth(uint16(gid))
		if err != nil {
			adv = 0
		}
		glyphs = append(glyphs, ShapedGlyph{
			GID:          uint32(gid),
			XAdvance:     adv,
			ClusterStart: i,
		})
	}

	if dir == RTL {
		for i, j := 0, len(glyphs)-1; i < j; i, j = i+1, j-1 {
			glyphs[i], glyphs[j] = glyphs[j], glyphs[i]
		}
	}
	return glyphs, nil
}

func (s SimpleShaper) Close(face Face) error { return nil }
