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
	"bytes"
	"fmt"
	"strings"
)

// PaintMode selects which painting operator closes a path.
type PaintMode int

const (
	// ModeNone leaves the path in place, for a following clip.
	ModeNone PaintMode = iota
	ModeFill
	ModeStroke
	ModeFillStroke
)

func (m PaintMode) operator() string {
	switch m {
	case ModeFill:
		return "f"
	case ModeStroke:
		return "S"
	case ModeFillStroke:
		return "B"
	default:
		return ""
	}
}

// Point is a path vertex in user-space points.
type Point struct{ X, Y float64 }

// PathSegment is one element of a path: a moveto, lineto, or cubic Bézier
// curveto (in which case Ctrl1/Ctrl2 are populated).
type PathSegment struct {
	To          Point
	IsCurve     bool
	Ctrl1, Ctrl2 Point
}

// Glyph is one positioned glyph in a shaped run, as produced by the text
// pipeline. Advances and offsets are in font design units; DrawShapedRun
// scales them by size/upem.
type Glyph struct {
	GID            uint16
	XAdvance       float64
	YAdvance       float64
	XOffset        float64
	YOffset        float64
	IsSpaceCluster bool // true if this glyph begins a single-space cluster
}

// Stream accumulates the operator bytes for a single page. Every method
// appends ASCII bytes to the internal buffer; nothing is flushed until
// Bytes is called at finalize.
type Stream struct {
	buf        bytes.Buffer
	fonts      map[string]bool
	xobjects   map[string]bool
	extGStates map[string]bool
	shadings   map[string]bool

	qDepth  int
	qTotal  int
	qClosed int
	btOpen  bool
	btCount int
	etCount int
}

// New returns an empty content stream builder.
func New() *Stream {
	return &Stream{
		fonts:      make(map[string]bool),
		xobjects:   make(map[string]bool),
		extGStates: make(map[string]bool),
		shadings:   make(map[string]bool),
	}
}

// Bytes returns the accumulated operator bytes. Callers should check
// Balanced() first; an unbalanced stream is still returned as-is so callers
// can decide how to surface the error.
func (s *Stream) Bytes() []byte { return s.buf.Bytes() }

// Balanced reports whether every q has a matching Q and every BT a matching
// ET.
func (s *Stream) Balanced() bool {
	return s.qTotal == s.qClosed && s.btCount == s.etCount
}

// FontNames, ImageNames, ExtGStateNames and ShadingNames return the
// resource names referenced on this page, for building its /Resources
// dictionary.
func (s *Stream) FontNames() []string      { return keys(s.fonts) }
func (s *Stream) ImageNames() []string     { return keys(s.xobjects) }
func (s *Stream) ExtGStateNames() []string { return keys(s.extGStates) }
func (s *Stream) ShadingNames() []string   { return keys(s.shadings) }

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func (s *Stream) line(format string, args ...any) {
	fmt.Fprintf(&s.buf, format, args...)
	s.buf.WriteByte('\n')
}

// SaveState emits q.
func (s *Stream) SaveState() {
	s.qDepth++
	s.qTotal++
	s.line("q")
}

// RestoreState emits Q.
func (s *Stream) RestoreState() {
	s.qDepth--
	s.qClosed++
	s.line("Q")
}

// SetStrokeWidth emits "w w" when w is not 1 (the PDF default).
func (s *Stream) SetStrokeWidth(w float64) {
	if w == 1 {
		return
	}
	s.line("%s w", formatComponent(w))
}

// SetFillColor emits the fill-color operator for c.
func (s *Stream) SetFillColor(c Color) {
	if c == nil {
		return
	}
	s.line("%s", c.setFill())
}

// SetStrokeColor emits the stroke-color operator for c.
func (s *Stream) SetStrokeColor(c Color) {
	if c == nil {
		return
	}
	s.line("%s", c.setStroke())
}

// SetOpacity emits "/name gs"; name must already be present in the page's
// ExtGState resources (the caller registers it via ResourceCache first).
func (s *Stream) SetOpacity(name string) {
	s.extGStates[name] = true
	s.line("/%s gs", name)
}

// DrawRect emits "x y w h re" followed by the operator for mode.
func (s *Stream) DrawRect(x, y, w, h float64, mode PaintMode) {
	s.line("%s %s %s %s re", formatComponent(x), formatComponent(y), formatComponent(w), formatComponent(h))
	if op := mode.operator(); op != "" {
		s.line("%s", op)
	}
}

// DrawPath emits a moveto for the first point, then a lineto or curveto for
// each following segment, an optional closepath, and the operator for
// mode (W n for ModeNone, i.e. clip-only).
func (s *Stream) DrawPath(start Point, segs []PathSegment, close bool, mode PaintMode) {
	s.line("%s %s m", formatComponent(start.X), formatComponent(start.Y))
	for _, seg := range segs {
		if seg.IsCurve {
			s.line("%s %s %s %s %s %s c",
				formatComponent(seg.Ctrl1.X), formatComponent(seg.Ctrl1.Y),
				formatComponent(seg.Ctrl2.X), formatComponent(seg.Ctrl2.Y),
				formatComponent(seg.To.X), formatComponent(seg.To.Y))
		} else {
			s.line("%s %s l", formatComponent(seg.To.X), formatComponent(seg.To.Y))
		}
	}
	if close {
		s.line("h")
	}
	if mode == ModeNone {
		s.line("W n")
	} else if op := mode.operator(); op != "" {
		s.line("%s", op)
	}
}

// ClipCurrentPath emits "W n".
func (s *Stream) ClipCurrentPath() {
	s.line("W n")
}

// DrawImage emits "q <cm> /name Do Q", mapping the unit square to the
// rectangle (x,y,w,h).
func (s *Stream) DrawImage(name string, x, y, w, h float64) {
	s.xobjects[name] = true
	s.line("q %s 0 0 %s %s %s cm /%s Do Q",
		formatComponent(w), formatComponent(h), formatComponent(x), formatComponent(y), name)
}

// DrawShading emits "/name sh".
func (s *Stream) DrawShading(name string) {
	s.shadings[name] = true
	s.line("/%s sh", name)
}

// DrawTextLiteral emits a BT ... ET block drawing text as a literal PDF
// string (embeddedTTF false) or as 2-byte big-endian hex GIDs (embeddedTTF
// true).
func (s *Stream) DrawTextLiteral(text []byte, embeddedTTF bool, fontName string, size, x, y float64, color Color) {
	s.fonts[fontName] = true
	s.btOpen = true
	s.btCount++

	s.line("q")
	s.SetFillColor(color)
	s.line("BT")
	s.line("/%s %s Tf", fontName, formatComponent(size))
	s.line("%s %s Td", formatComponent(x), formatComponent(y))
	if embeddedTTF {
		s.line("<%s> Tj", hexEncode(text))
	} else {
		s.line("%s Tj", escapeLiteral(text))
	}
	s.line("ET")
	s.line("Q")

	s.etCount++
	s.btOpen = false
}

// DrawShapedRun emits the positioned-glyph sequence produced by the text
// pipeline: BT, font/size, then for each glyph a "1 0 0 1 tx ty Tm <GGGG>
// Tj", advancing the pen by the glyph's own advance (scaled by size/upem)
// plus wordSpacing after a space-cluster glyph and letterSpacing after
// every glyph. rtl only affects how the caller chose x,y and glyph order
// before calling this; the emission itself is direction-agnostic.
func (s *Stream) DrawShapedRun(glyphs []Glyph, fontName string, size, upem, x, y float64, rtl bool, wordSpacing, letterSpacing float64, color Color) {
	s.fonts[fontName] = true
	s.btOpen = true
	s.btCount++

	scale := size / upem

	s.line("q")
	s.SetFillColor(color)
	s.line("BT")
	s.line("/%s %s Tf", fontName, formatComponent(size))

	tx, ty := x, y
	for _, g := range glyphs {
		px := tx + g.XOffset*scale
		py := ty + g.YOffset*scale
		s.line("1 0 0 1 %s %s Tm", formatComponent(px), formatComponent(py))
		s.line("<%04x> Tj", g.GID)

		tx += g.XAdvance * scale
		ty += g.YAdvance * scale
		if g.IsSpaceCluster {
			tx += wordSpacing
		}
		tx += letterSpacing
	}

	s.line("ET")
	s.line("Q")

	s.etCount++
	s.btOpen = false
}

func hexEncode(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}

func escapeLiteral(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, c := range b {
		switch c {
		case '\\', '(', ')':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
