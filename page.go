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

package pdfkit

import (
	"bytes"
	"errors"

	"github.com/paperglyph/pdfkit/annotation"
	"github.com/paperglyph/pdfkit/content"
	"github.com/paperglyph/pdfkit/resource"
	"github.com/paperglyph/pdfkit/shaping"
)

// Page is one page of a Document: a content stream plus the link
// annotations placed on it. Its dict and resources are only built at
// Document.Save, once every draw call has recorded what it used.
type Page struct {
	doc    *Document
	Width  float64
	Height float64

	ref        Reference
	contentRef Reference
	stream     *content.Stream
	links      []annotation.Link
	annots     Array
}

// Text lays out str starting at (x, y) through the document's text
// pipeline (font fallback, run segmentation, shaping, line breaking,
// justification and BiDi composition), per style.
func (p *Page) Text(str string, x, y float64, style shaping.Style) error {
	return p.doc.pipeline.Draw(p.stream, str, x, y, style)
}

// Rect draws an axis-aligned rectangle.
func (p *Page) Rect(x, y, w, h float64, mode content.PaintMode) {
	p.stream.DrawRect(x, y, w, h, mode)
}

// Path draws an arbitrary path starting at start.
func (p *Page) Path(start content.Point, segs []content.PathSegment, close bool, mode content.PaintMode) {
	p.stream.DrawPath(start, segs, close, mode)
}

// Clip intersects the current clip region with the path just drawn with
// PaintMode content.ModeNone.
func (p *Page) Clip() { p.stream.ClipCurrentPath() }

// SaveState and RestoreState bracket a block of graphics-state changes
// (color, clip, opacity) so they don't leak past it.
func (p *Page) SaveState()    { p.stream.SaveState() }
func (p *Page) RestoreState() { p.stream.RestoreState() }

// SetOpacity sets both fill and stroke alpha for subsequent drawing, via
// an interned ExtGState.
func (p *Page) SetOpacity(alpha float64) {
	name := p.doc.resources.AddOpacity(p.doc.writer, alpha)
	p.stream.SetOpacity(name)
}

// Image embeds a PNG image (detected by its signature) at (x, y, w, h).
// Identical bytes passed on an earlier call or another page are interned
// to the same XObject.
func (p *Page) Image(data []byte, x, y, w, h float64) error {
	if !bytes.HasPrefix(data, pngSignature) {
		return newError(KindImageDecode, "Page.Image", errNotPNG)
	}
	name, err := p.doc.resources.AddPNG(p.doc.writer, data)
	if err != nil {
		return err
	}
	p.stream.DrawImage(name, x, y, w, h)
	return nil
}

// ImageJPEG embeds already-encoded JPEG bytes verbatim with /DCTDecode.
// JPEG dimension sniffing is out of scope, so the caller supplies the
// pixel dimensions alongside the placement rectangle.
func (p *Page) ImageJPEG(data []byte, pixelWidth, pixelHeight int, x, y, w, h float64) error {
	name, err := p.doc.resources.AddJPEG(p.doc.writer, data, pixelWidth, pixelHeight)
	if err != nil {
		return err
	}
	p.stream.DrawImage(name, x, y, w, h)
	return nil
}

// Gradient draws an axial or radial shading covering the full page
// clip region in effect, interned by (kind, coords, stops).
func (p *Page) Gradient(kind resource.ShadingKind, coords []float64, stops []resource.Stop) {
	name := p.doc.resources.AddShading(p.doc.writer, kind, coords, stops)
	p.stream.DrawShading(name)
}

// AddLink places a clickable rectangle. If url is non-empty it opens url;
// otherwise it jumps to targetPage (0-based) within this document.
func (p *Page) AddLink(url string, targetPage int, rect annotation.Rect) {
	p.links = append(p.links, annotation.Link{Rect: rect, URL: url, TargetPage: targetPage})
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

var errNotPNG = errors.New("image data is not a PNG (bad signature)")
