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

// Face is an opaque handle to a shaper's open font, returned by
// Shaper.Open and passed back to GlyphID/Shape/Close. Its concrete type is
// entirely up to the Shaper implementation.
type Face any

// ShapedGlyph is one glyph produced by a Shaper, in visual order for the
// direction that was requested. ClusterStart is a byte offset into the
// input string identifying the source cluster this glyph belongs to; the
// pipeline only relies on equal cluster indices grouping glyphs from the
// same source characters, not on the offset's unit.
type ShapedGlyph struct {
	GID          uint32
	XAdvance     float64
	YAdvance     float64
	XOffset      float64
	YOffset      float64
	ClusterStart int
}

// Shaper is the abstract interface to a complex text shaper (e.g.
// HarfBuzz). The pipeline never implements real shaping itself; Shaper is
// a consumed, externally supplied collaborator.
type Shaper interface {
	Open(fontBytes []byte) (Face, error)
	GlyphID(face Face, codepoint rune) (uint32, error)
	Shape(face Face, text string, dir Direction) ([]ShapedGlyph, error)
	Close(face Face) error
}
