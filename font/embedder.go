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
	"crypto/md5"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/paperglyph/pdfkit/pdfobj"
)

// pair is one (gid, source text) sample recorded for ToUnicode emission.
type pair struct {
	gid  uint16
	text string
}

// Embedder subsets (see subset.go for the policy actually implemented) and
// embeds a single TrueType font as a composite Type0/CIDFontType2 pair. A
// document allocates one Embedder per configured font key and registers
// its Ref before any page is drawn, so content streams can reference the
// font by id before its dictionary body exists; Finalize fills the body in
// at save time, once every page has recorded its glyph usage.
type Embedder struct {
	// Ref is the indirect reference content streams use for this font's
	// /F resource entry. The caller allocates it (via ObjectWriter.Alloc)
	// when the font is first registered.
	Ref pdfobj.Reference

	raw      []byte
	face     *sfnt.Font
	buf      sfnt.Buffer
	baseName string
	upem     float64

	pairs   []pair
	seenGID map[uint16]bool
}

// NewEmbedder parses fontBytes as a TrueType/OpenType-glyf font.
func NewEmbedder(fontBytes []byte, baseName string) (*Embedder, error) {
	face, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, &pdfobj.Error{Kind: pdfobj.KindFontConfig, Op: "font.NewEmbedder", Err: err}
	}

	var buf sfnt.Buffer
	upemUnits, err := face.UnitsPerEm()
	if err != nil {
		return nil, &pdfobj.Error{Kind: pdfobj.KindFontConfig, Op: "font.NewEmbedder", Err: err}
	}

	return &Embedder{
		raw:      fontBytes,
		face:     face,
		baseName: baseName,
		upem:     float64(upemUnits),
		seenGID:  make(map[uint16]bool),
	}, nil
}

// UnitsPerEm is the font's internal coordinate scale, needed by the text
// pipeline to convert shaper advances (in font design units) to user-space
// points.
func (e *Embedder) UnitsPerEm() float64 { return e.upem }

// Bytes returns the raw font program, so a Shaper bridge can open its own
// copy without re-reading the source file.
func (e *Embedder) Bytes() []byte { return e.raw }

// GlyphIndex resolves a Unicode code point to a glyph id using the font's
// cmap table. An external shaper bridge typically does this lookup itself;
// this method backs shaping.SimpleShaper, the pipeline's space-width
// measurement and the descriptor's fixed-pitch check.
func (e *Embedder) GlyphIndex(r rune) (uint16, error) {
	gid, err := e.face.GlyphIndex(&e.buf, r)
	if err != nil {
		return 0, err
	}
	return uint16(gid), nil
}

// AdvanceWidth returns gid's advance width in font design units. Passing
// upem itself as the ppem argument to GlyphAdvance makes the scaled result
// come back in raw design units (scale factor ppem/upem == 1).
func (e *Embedder) AdvanceWidth(gid uint16) (float64, error) {
	ppem := fixed.Int26_6(e.upem * 64)
	adv, err := e.face.GlyphAdvance(&e.buf, sfnt.GlyphIndex(gid), ppem, font.HintingNone)
	if err != nil {
		return 0, err
	}
	return float64(adv) / 64, nil
}

// RecordGlyph appends (gid, clusterText) to the font's pair list and marks
// gid as used, so Finalize includes it in /W and, if any pairs exist, in
// the ToUnicode CMap. Only the first glyph of a cluster
// carries non-empty clusterText.
func (e *Embedder) RecordGlyph(gid uint16, clusterText string) {
	e.seenGID[gid] = true
	e.pairs = append(e.pairs, pair{gid: gid, text: clusterText})
}

// subsetTag derives a deterministic 6-letter uppercase tag from the font
// bytes, in the "AAAAAA+" convention PDF readers expect ahead of a subset
// font's PostScript name.
func (e *Embedder) subsetTag() string {
	sum := md5.Sum(e.raw)
	tag := make([]byte, 6)
	for i := range tag {
		tag[i] = 'A' + sum[i]%26
	}
	return string(tag)
}

// Finalize writes the Type0/CIDFontType2/FontDescriptor/FontFile2 objects
// (and, if any glyph was recorded, the ToUnicode CMap) to w, using the Ref
// allocated at registration for the Type0 dict.
func (e *Embedder) Finalize(w pdfobj.Writer) error {
	gidList := make([]uint16, 0, len(e.seenGID))
	for g := range e.seenGID {
		gidList = append(gidList, g)
	}
	gidList = append(gidList, 0) // .notdef is always present
	sort.Slice(gidList, func(i, j int) bool { return gidList[i] < gidList[j] })

	widths := make(pdfobj.Array, 0, 2*len(gidList))
	for _, gid := range gidList {
		adv, err := e.AdvanceWidth(gid)
		if err != nil {
			return &pdfobj.Error{Kind: pdfobj.KindFontConfig, Op: "font.Embedder.Finalize", Err: err}
		}
		scaled := adv * 1000 / e.upem
		widths = append(widths, pdfobj.Integer(int64(gid)), pdfobj.Array{pdfobj.Real(scaled)})
	}

	desc := e.computeDescriptor()
	fontName := e.subsetTag() + "+" + e.baseName

	fontFileRef := w.Alloc()
	w.AddStream(fontFileRef, pdfobj.Dict{
		"Length1": pdfobj.Integer(len(e.raw)),
	}, e.embeddedBytes(), false)

	descRef := w.Alloc()
	w.AddDict(descRef, pdfobj.Dict{
		"Type":        pdfobj.Name("FontDescriptor"),
		"FontName":    pdfobj.Name(fontName),
		"Flags":       pdfobj.Integer(desc.Flags),
		"FontBBox":    pdfobj.Array{pdfobj.Real(desc.FontBBox.LLx), pdfobj.Real(desc.FontBBox.LLy), pdfobj.Real(desc.FontBBox.URx), pdfobj.Real(desc.FontBBox.URy)},
		"ItalicAngle": pdfobj.Real(desc.ItalicAngle),
		"Ascent":      pdfobj.Real(desc.Ascent),
		"Descent":     pdfobj.Real(desc.Descent),
		"CapHeight":   pdfobj.Real(desc.CapHeight),
		"StemV":       pdfobj.Real(desc.StemV),
		"FontFile2":   fontFileRef,
	})

	cidFontRef := w.Alloc()
	w.AddDict(cidFontRef, pdfobj.Dict{
		"Type":     pdfobj.Name("Font"),
		"Subtype":  pdfobj.Name("CIDFontType2"),
		"BaseFont": pdfobj.Name(fontName),
		"CIDSystemInfo": pdfobj.Dict{
			"Registry":   pdfobj.String("Adobe"),
			"Ordering":   pdfobj.String("Identity"),
			"Supplement": pdfobj.Integer(0),
		},
		"FontDescriptor": descRef,
		"W":              widths,
		"DW":             pdfobj.Integer(1000),
		"CIDToGIDMap":    pdfobj.Name("Identity"),
	})

	fontDict := pdfobj.Dict{
		"Type":            pdfobj.Name("Font"),
		"Subtype":         pdfobj.Name("Type0"),
		"BaseFont":        pdfobj.Name(fontName),
		"Encoding":        pdfobj.Name("Identity-H"),
		"DescendantFonts": pdfobj.Array{cidFontRef},
	}

	if len(e.pairs) > 0 {
		cmapRef := w.Alloc()
		w.AddStream(cmapRef, pdfobj.Dict{}, buildToUnicodeCMap(e.pairs), false)
		fontDict["ToUnicode"] = cmapRef
	}

	w.AddDict(e.Ref, fontDict)
	return nil
}

// embeddedBytes returns the font program bytes written into /FontFile2.
// See subset.go: this module embeds the whole font rather than a true
// byte-level glyph subset.
func (e *Embedder) embeddedBytes() []byte { return e.raw }
