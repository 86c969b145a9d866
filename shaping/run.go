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

// Run is a maximal substring sharing one font and one resolved direction,
// as produced by segmentRuns.
type Run struct {
	FontKey string
	Text    string
	RTL     bool
}

// fontPicker resolves the font key to use for a code point, given the
// caller's configured fallback order and default font.
type fontPicker func(r rune) string

// segmentRuns walks text by Unicode scalar value, computing a direction
// and a font per character, and starts a new run whenever either changes
// relative to the previous non-neutral character. Neutral characters
// (whitespace and a fixed punctuation set) inherit the currently open
// run's direction instead of fragmenting it.
func segmentRuns(text string, pickFont fontPicker) []Run {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var runs []Run
	var cur []rune
	curFont := ""
	curRTL := false
	haveRun := false

	flush := func() {
		if len(cur) > 0 {
			runs = append(runs, Run{FontKey: curFont, Text: string(cur), RTL: curRTL})
			cur = nil
		}
	}

	for _, r := range runes {
		font := pickFont(r)
		class := classify(r)

		var rtl bool
		switch class {
		case classLTR:
			rtl = false
		case classRTL:
			rtl = true
		case classNeutral:
			if haveRun {
				rtl = curRTL
				font = curFont
			} else {
				rtl = false
			}
		}

		if haveRun && class != classNeutral && (font != curFont || rtl != curRTL) {
			flush()
		}

		if class != classNeutral || !haveRun {
			curFont = font
			curRTL = rtl
		}
		haveRun = true
		cur = append(cur, r)
	}
	flush()

	return runs
}
