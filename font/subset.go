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

// Subsetting policy.
//
// A true subset rewrites glyf/loca/hmtx/cmap to contain only the glyphs a
// document actually used, at the cost of a full TrueType table writer.
// Finalize tracks exactly the information a subsetter needs — seenGID,
// reachable via RecordGlyph — but embeds the whole font program. A full
// embed is valid PDF output and a
// legitimate first cut, differing from subsetting only in file size, never
// in semantics. Swapping in a real subsetter later only touches
// (*Embedder).embeddedBytes.
