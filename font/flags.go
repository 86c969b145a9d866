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

// Flags represents the PDF FontDescriptor /Flags bit field (PDF 32000-1:2008
// section 9.8.2).
type Flags uint32

const (
	FlagFixedPitch  Flags = 1 << 0
	FlagSerif       Flags = 1 << 1
	FlagSymbolic    Flags = 1 << 2
	FlagScript      Flags = 1 << 3
	FlagNonsymbolic Flags = 1 << 5
	FlagItalic      Flags = 1 << 6
	FlagForceBold   Flags = 1 << 18
)

// deriveFlags computes the descriptor flags for a subsetted CID TrueType
// font. Composite fonts embedded this way always use a custom Identity-H
// encoding, so readers expect Symbolic rather than Nonsymbolic regardless
// of the glyph repertoire.
func deriveFlags(fixedPitch, italic bool) Flags {
	f := FlagSymbolic
	if fixedPitch {
		f |= FlagFixedPitch
	}
	if italic {
		f |= FlagItalic
	}
	return f
}
