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

import "github.com/paperglyph/pdfkit/pdfobj"

// The eleven PDF value types and the Object interface live in pdfobj, so
// that font/resource/annotation/outline can share the vocabulary without
// importing this package (which imports them back, for Document/Page
// assembly). Everything below is a plain alias: call sites in this
// package and its tests spell these names exactly as they did before the
// split.
type (
	Object    = pdfobj.Object
	Null      = pdfobj.Null
	Boolean   = pdfobj.Boolean
	Integer   = pdfobj.Integer
	Real      = pdfobj.Real
	Name      = pdfobj.Name
	String    = pdfobj.String
	HexString = pdfobj.HexString
	Array     = pdfobj.Array
	Dict      = pdfobj.Dict
	Reference = pdfobj.Reference
	Stream    = pdfobj.Stream
)
