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

// Package pdfkit assembles and serializes PDF 1.7 object graphs.
//
// The package owns the indirect-object writer (xref construction,
// deferred streams, optional per-object encryption), the document
// and page assembly that builds the Catalog/Pages/Outlines trees, and
// the low-level grammar rules that turn Go values into PDF bytes.
// Content-stream construction lives in [github.com/paperglyph/pdfkit/content],
// composite text layout in [github.com/paperglyph/pdfkit/shaping], and font
// embedding in [github.com/paperglyph/pdfkit/font]; this package wires them
// together at Save time.
package pdfkit
