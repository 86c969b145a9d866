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

// Package font subsets a TrueType file and embeds it as a composite
// CIDFontType2 font inside a Type0 wrapper, with /Encoding /Identity-H and
// /CIDToGIDMap /Identity so the glyph ids a shaper returns are written
// directly into content streams as 2-byte codes. It also accumulates the
// glyph/unicode pairs needed to emit a ToUnicode CMap at save time.
package font
