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
	"strings"

	"github.com/paperglyph/pdfkit/content"
	"github.com/paperglyph/pdfkit/font"
)

// Align is a paragraph's horizontal alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// Style configures one Page.Text call, mirroring the style fields listed
// in one Page.Text call.
type Style struct {
	Font          string // font key; "" uses the pipeline's default
	Size          float64
	ForceRTL      *bool // nil: infer from content; non-nil: force direction
	Width         float64 // 0: no wrapping, single line
	Align         Align
	Color         content.Color
	WordSpacing   float64
	LetterSpacing float64
	LineHeight    float64 // 0 defaults to Size*1.4

	Underline     bool
	Strikethrough bool
	Subscript     bool // mutually exclusive with Superscript
	Superscript   bool
	LineColor     content.Color // underline/strikethrough color; nil uses Color
}

// Scaling and placement constants for subscript/superscript and the two
// decoration rules. The script scale and baseline shifts are fractions of
// the style's nominal Size; the decoration offsets and thickness are
// fractions of the size the glyphs are drawn at (the shrunk script size
// when Subscript or Superscript is set).
const (
	scriptScale         = 0.65
	superscriptShift    = 0.35
	subscriptShift      = -0.2
	underlineOffset     = -0.08
	strikethroughOffset = 0.3
	decorationThickness = 0.06
)

// fontEntry bundles an embedder with its shaper face.
type fontEntry struct {
	embedder *font.Embedder
	face     Face
}

// Pipeline implements the TextPipeline component: font fallback, run
// segmentation, measurement, line breaking, justification, BiDi-aware
// line composition, and ToUnicode accumulation.
//
// BiDi limitation: this is not a full Unicode Bidirectional
// Algorithm. It classifies only strong-LTR, strong-RTL and a fixed neutral
// set that inherits the enclosing run's direction, and composes a line by
// treating each space-delimited word as an atomic placement unit — a word
// spanning more than one script (rare, and unsupported by the line-break
// contract's "no mid-word break" rule either) is shaped correctly but its
// internal runs are placed left-to-right rather than reordered.
type Pipeline struct {
	Shaper        Shaper
	FallbackOrder []string
	DefaultFont   string

	fonts map[string]*fontEntry
}

// NewPipeline returns a Pipeline using shaper to open and shape faces.
func NewPipeline(shaper Shaper, fallbackOrder []string, defaultFont string) *Pipeline {
	return &Pipeline{
		Shaper:        shaper,
		FallbackOrder: fallbackOrder,
		DefaultFont:   defaultFont,
		fonts:         make(map[string]*fontEntry),
	}
}

// RegisterFont opens e's bytes with the pipeline's shaper under key, so
// later Draw calls can reference key in FallbackOrder, DefaultFont or
// Style.Font.
func (p *Pipeline) RegisterFont(key string, e *font.Embedder) error {
	face, err := p.Shaper.Open(e.Bytes())
	if err != nil {
		return err
	}
	p.fonts[key] = &fontEntry{embedder: e, face: face}
	return nil
}

func (p *Pipeline) pickFont(r rune, order []string, def string) string {
	for _, key := range order {
		fe, ok := p.fonts[key]
		if !ok {
			continue
		}
		gid, err := p.Shaper.GlyphID(fe.face, r)
		if err == nil && gid > 0 {
			return key
		}
	}
	return def
}

func (p *Pipeline) order(style Style) ([]string, string) {
	def := style.Font
	if def == "" {
		def = p.DefaultFont
	}
	order := p.FallbackOrder
	if style.Font != "" {
		order = append([]string{style.Font}, p.FallbackOrder...)
	}
	return order, def
}

// wordUnit is a single space-delimited word, already segmented into
// script/font runs and shaped.
type wordUnit struct {
	runs    []Run
	glyphs  [][]ShapedGlyph
	widths  []float64
	width   float64
	rtl     bool
}

func (p *Pipeline) buildWord(text string, style Style, order []string, def string) (wordUnit, error) {
	runs := segmentRuns(text, func(r rune) string { return p.pickFont(r, order, def) })
	if style.ForceRTL != nil {
		for i := range runs {
			runs[i].RTL = *style.ForceRTL
		}
	}

	w := wordUnit{rtl: len(runs) > 0 && runs[0].RTL}
	for _, r := range runs {
		fe := p.fonts[r.FontKey]
		if fe == nil {
			// No registered font covers this run (or none is registered
			// at all): fall back to the reader's built-in Helvetica
			// rather than dropping the text.
			fw := standardFallbackWidth(r.Text, style.Size)
			w.runs = append(w.runs, Run{FontKey: font.StandardFontResourceKey, Text: r.Text, RTL: r.RTL})
			w.glyphs = append(w.glyphs, nil)
			w.widths = append(w.widths, fw)
			w.width += fw
			continue
		}
		dir := LTR
		if r.RTL {
			dir = RTL
		}
		glyphs, err := p.Shaper.Shape(fe.face, r.Text, dir)
		if err != nil {
			return wordUnit{}, err
		}

		scale := style.Size / fe.embedder.UnitsPerEm()
		width := float64(len(glyphs)) * style.LetterSpacing
		for _, g := range glyphs {
			width += g.XAdvance * scale
		}

		w.runs = append(w.runs, r)
		w.glyphs = append(w.glyphs, glyphs)
		w.widths = append(w.widths, width)
		w.width += width
	}
	return w, nil
}

// standardFallbackWidth measures text as it will be drawn by
// DrawTextLiteral in the standard font: one WinAnsi byte per rune, code
// points above Latin-1 falling back to the average width.
func standardFallbackWidth(text string, size float64) float64 {
	var width float64
	for _, r := range text {
		var b byte
		if r < 256 {
			b = byte(r)
		}
		width += font.StandardAdvance(b) * size
	}
	return width
}

// standardFallbackBytes renders text as single-byte WinAnsi-ish codes for
// DrawTextLiteral, substituting '?' for any code point the standard font
// encoding can't represent.
func standardFallbackBytes(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r < 256 {
			out = append(out, byte(r))
		} else {
			out = append(out, '?')
		}
	}
	return out
}

// spaceWidth measures a single space glyph in the default font, used both
// to decide word wrapping and as the natural (pre-justification) gap
// between words.
func (p *Pipeline) spaceWidth(style Style, def string) float64 {
	fe := p.fonts[def]
	if fe == nil {
		return style.Size * 0.25
	}
	gid, err := fe.embedder.GlyphIndex(' ')
	if err != nil || gid == 0 {
		return style.Size * 0.25
	}
	adv, err := fe.embedder.AdvanceWidth(gid)
	if err != nil {
		return style.Size * 0.25
	}
	return adv * style.Size / fe.embedder.UnitsPerEm()
}

// line is a committed, word-wrapped line ready for composition.
type line struct {
	words    []wordUnit
	isLast   bool
}

func (p *Pipeline) breakLines(words []wordUnit, availWidth, gap float64) []line {
	if availWidth <= 0 {
		return []line{{words: words, isLast: true}}
	}

	var lines []line
	var cur []wordUnit
	var curWidth float64
	for _, w := range words {
		add := w.width
		if len(cur) > 0 {
			add += gap
		}
		if len(cur) > 0 && curWidth+add > availWidth {
			lines = append(lines, line{words: cur})
			cur = nil
			curWidth = 0
			add = w.width
		}
		cur = append(cur, w)
		curWidth += add
	}
	if len(cur) > 0 {
		lines = append(lines, line{words: cur})
	}
	if len(lines) > 0 {
		lines[len(lines)-1].isLast = true
	}
	return lines
}

// composeSequence places items along a line: forward from startCursor for
// LTR, backward (right edge anchored at startCursor) for RTL. It returns
// each item's left-edge x coordinate.
func composeSequence(widths []float64, startCursor, gap float64, rtl bool) []float64 {
	xs := make([]float64, len(widths))
	cursor := startCursor
	for i, w := range widths {
		if rtl {
			cursor -= w
			xs[i] = cursor
			cursor -= gap
		} else {
			xs[i] = cursor
			cursor += w + gap
		}
	}
	return xs
}

// Draw lays out text starting at (x, y) and emits it into cs, recording
// glyph/unicode pairs on each referenced font's Embedder for later
// ToUnicode emission.
func (p *Pipeline) Draw(cs *content.Stream, text string, x, y float64, style Style) error {
	if style.LineHeight == 0 {
		style.LineHeight = style.Size * 1.4
	}

	// Subscript/superscript shrink the glyphs and shift the baseline;
	// both act on the whole call, not per character, so they're applied
	// once here rather than threaded through word building.
	drawStyle := style
	var baselineShift float64
	switch {
	case style.Superscript:
		drawStyle.Size = style.Size * scriptScale
		baselineShift = style.Size * superscriptShift
	case style.Subscript:
		drawStyle.Size = style.Size * scriptScale
		baselineShift = style.Size * subscriptShift
	}

	order, def := p.order(drawStyle)
	gap := p.spaceWidth(drawStyle, def)

	var words []wordUnit
	for _, tok := range strings.Split(text, " ") {
		w, err := p.buildWord(tok, drawStyle, order, def)
		if err != nil {
			return err
		}
		words = append(words, w)
	}

	lines := p.breakLines(words, drawStyle.Width, gap)

	cursorY := y + baselineShift
	for _, ln := range lines {
		p.drawLine(cs, ln, x, cursorY, drawStyle, gap)
		cursorY -= style.LineHeight
	}
	return nil
}

func (p *Pipeline) drawLine(cs *content.Stream, ln line, x, y float64, style Style, naturalGap float64) {
	if len(ln.words) == 0 {
		return
	}
	baseRTL := ln.words[0].rtl

	var contentWidth float64
	for i, w := range ln.words {
		if i > 0 {
			contentWidth += naturalGap
		}
		contentWidth += w.width
	}

	align := style.Align
	justify := align == AlignJustify && !ln.isLast
	if align == AlignJustify && ln.isLast {
		if baseRTL {
			align = AlignRight
		} else {
			align = AlignLeft
		}
	}

	var boxLeft, boxRight, effectiveGap float64
	switch {
	case justify:
		boxLeft = x
		boxRight = x + style.Width
		spaceCount := len(ln.words) - 1
		extra := 0.0
		if spaceCount > 0 {
			extra = (style.Width - contentWidth) / float64(spaceCount)
		}
		effectiveGap = naturalGap + extra
	case align == AlignCenter:
		avail := style.Width
		if avail == 0 {
			avail = contentWidth
		}
		offset := (avail - contentWidth) / 2
		boxLeft = x + offset
		boxRight = boxLeft + contentWidth
		effectiveGap = naturalGap
	case align == AlignRight:
		width := style.Width
		if width == 0 {
			width = contentWidth
		}
		boxRight = x + width
		boxLeft = boxRight - contentWidth
		effectiveGap = naturalGap
	default: // AlignLeft
		boxLeft = x
		boxRight = boxLeft + contentWidth
		effectiveGap = naturalGap
	}

	widths := make([]float64, len(ln.words))
	for i, w := range ln.words {
		widths[i] = w.width
	}

	var cursorStart float64
	if baseRTL {
		cursorStart = boxRight
	} else {
		cursorStart = boxLeft
	}
	xs := composeSequence(widths, cursorStart, effectiveGap, baseRTL)

	for i, w := range ln.words {
		p.drawWord(cs, w, xs[i], y, style)
	}

	if style.Underline || style.Strikethrough {
		p.drawDecorations(cs, style, boxLeft, boxRight, y)
	}
}

// drawDecorations paints the underline and/or strikethrough rule spanning
// [left, right] at baseline y, in style.LineColor (style.Color if unset).
func (p *Pipeline) drawDecorations(cs *content.Stream, style Style, left, right, y float64) {
	if right <= left {
		return
	}
	color := style.LineColor
	if color == nil {
		color = style.Color
	}
	thickness := style.Size * decorationThickness

	if style.Underline {
		cs.SaveState()
		cs.SetFillColor(color)
		cs.DrawRect(left, y+style.Size*underlineOffset, right-left, thickness, content.ModeFill)
		cs.RestoreState()
	}
	if style.Strikethrough {
		cs.SaveState()
		cs.SetFillColor(color)
		cs.DrawRect(left, y+style.Size*strikethroughOffset, right-left, thickness, content.ModeFill)
		cs.RestoreState()
	}
}

func (p *Pipeline) drawWord(cs *content.Stream, w wordUnit, x, y float64, style Style) {
	cursor := x
	for i, r := range w.runs {
		if r.FontKey == font.StandardFontResourceKey {
			cs.DrawTextLiteral(standardFallbackBytes(r.Text), false, font.StandardFontResourceKey, style.Size, cursor, y, style.Color)
			cursor += w.widths[i]
			continue
		}
		fe := p.fonts[r.FontKey]
		if fe == nil {
			continue
		}
		glyphs := annotateSpaceClusters(w.glyphs[i], r.Text)

		contentGlyphs := make([]content.Glyph, len(glyphs))
		for j, g := range glyphs {
			contentGlyphs[j] = content.Glyph{
				GID:            uint16(g.GID),
				XAdvance:       g.XAdvance,
				YAdvance:       g.YAdvance,
				XOffset:        g.XOffset,
				YOffset:        g.YOffset,
				IsSpaceCluster: g.isSpace,
			}
			clusterText := clusterTextFor(r.Text, glyphs, j)
			fe.embedder.RecordGlyph(uint16(g.GID), clusterText)
		}

		cs.DrawShapedRun(contentGlyphs, r.FontKey, style.Size, fe.embedder.UnitsPerEm(), cursor, y, r.RTL, style.WordSpacing, style.LetterSpacing, style.Color)
		cursor += w.widths[i]
	}
}

// annotatedGlyph pairs a ShapedGlyph with whether its cluster is a single
// space, needed by DrawShapedRun's word-spacing rule.
type annotatedGlyph struct {
	ShapedGlyph
	isSpace bool
}

func annotateSpaceClusters(glyphs []ShapedGlyph, text string) []annotatedGlyph {
	out := make([]annotatedGlyph, len(glyphs))
	for i, g := range glyphs {
		out[i] = annotatedGlyph{ShapedGlyph: g}
		if g.ClusterStart >= 0 && g.ClusterStart < len(text) && text[g.ClusterStart] == ' ' {
			out[i].isSpace = true
		}
	}
	return out
}

// clusterTextFor returns the logical substring the glyph at index i's
// cluster covers: from its ClusterStart (a byte offset into text) up to
// the nearest larger ClusterStart among the run's glyphs (or the end of
// text), so LTR and RTL visual orders give the same result. This matches
// the ToUnicode accumulation rule that only the first glyph of a cluster
// carries the full substring.
func clusterTextFor(text string, glyphs []annotatedGlyph, i int) string {
	start := glyphs[i].ClusterStart
	if i > 0 && glyphs[i-1].ClusterStart == start {
		return "" // not the cluster's first glyph
	}
	end := len(text)
	for _, g := range glyphs {
		if g.ClusterStart > start && g.ClusterStart < end {
			end = g.ClusterStart
		}
	}
	if start < 0 || start > end {
		return ""
	}
	return text[start:end]
}
