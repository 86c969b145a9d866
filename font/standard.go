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

import "github.com/paperglyph/pdfkit/pdfobj"

// StandardFontName is the PostScript name of the one base-14 font this
// package falls back to when a document draws text that no registered
// (embedded) font can shape. Every PDF 1.7 conforming reader has
// Helvetica built in, so it needs no FontFile2 and no subsetting.
const StandardFontName = "Helvetica"

// StandardFontResourceKey is the /Font resource name a content stream
// uses for literal text drawn in the standard font, distinct from the
// caller's own registered font keys.
const StandardFontResourceKey = "StdHelv"

// StandardDefaultWidth is the width (in 1000-unit glyph space) used for
// any WinAnsi code point not present in standardWidths.
const StandardDefaultWidth = 556

// standardWidths gives Helvetica's advance width, in 1000-unit glyph
// space, for the printable WinAnsiEncoding code points. These are
// reasonable approximations of the real AFM metrics (Helvetica has no
// embedded program to measure), close enough for layout purposes; they
// are not a transcription of Adobe's published Helvetica.afm.
var standardWidths = map[byte]int{
	' ': 278, '!': 278, '"': 355, '#': 556, '$': 556, '%': 889, '&': 667,
	'\'': 191, '(': 333, ')': 333, '*': 389, '+': 584, ',': 278, '-': 333,
	'.': 278, '/': 278,
	'0': 556, '1': 556, '2': 556, '3': 556, '4': 556,
	'5': 556, '6': 556, '7': 556, '8': 556, '9': 556,
	':': 278, ';': 278, '<': 584, '=': 584, '>': 584, '?': 556, '@': 1015,
	'A': 667, 'B': 667, 'C': 722, 'D': 722, 'E': 667, 'F': 611, 'G': 778,
	'H': 722, 'I': 278, 'J': 500, 'K': 667, 'L': 556, 'M': 833, 'N': 722,
	'O': 778, 'P': 667, 'Q': 778, 'R': 722, 'S': 667, 'T': 611, 'U': 722,
	'V': 667, 'W': 944, 'X': 667, 'Y': 667, 'Z': 611,
	'[': 278, '\\': 278, ']': 278, '^': 469, '_': 556, '`': 333,
	'a': 556, 'b': 556, 'c': 500, 'd': 556, 'e': 556, 'f': 278, 'g': 556,
	'h': 556, 'i': 222, 'j': 222, 'k': 500, 'l': 222, 'm': 833, 'n': 556,
	'o': 556, 'p': 556, 'q': 556, 'r': 333, 's': 500, 't': 278, 'u': 556,
	'v': 500, 'w': 722, 'x': 500, 'y': 500, 'z': 500,
	'{': 334, '|': 260, '}': 334, '~': 584,
}

// StandardAdvance returns b's advance width in user-space units per point
// of font size, i.e. already divided by the 1000-unit glyph space.
func StandardAdvance(b byte) float64 {
	if w, ok := standardWidths[b]; ok {
		return float64(w) / 1000
	}
	return float64(StandardDefaultWidth) / 1000
}

// StandardFontDict builds the Type1/Helvetica font dictionary. It carries
// no FontDescriptor or FontFile: base-14 fonts are resolved by the
// reader's own font substitution, per PDF 1.7 section 9.6.2.2.
func StandardFontDict() pdfobj.Dict {
	return pdfobj.Dict{
		"Type":     pdfobj.Name("Font"),
		"Subtype":  pdfobj.Name("Type1"),
		"BaseFont": pdfobj.Name(StandardFontName),
		"Encoding": pdfobj.Name("WinAnsiEncoding"),
	}
}
