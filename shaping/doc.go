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

// Package shaping turns a logical user string into positioned glyph runs:
// font fallback over a configured stack, script/direction run
// segmentation, shaping through an external ShaperBridge, word-based line
// breaking, alignment and justification, and per-line BiDi-aware run
// composition. It is intentionally not a full Unicode Bidirectional
// Algorithm implementation — see Pipeline's doc comment for the
// simplification this package commits to.
package shaping
