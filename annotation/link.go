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

package annotation

import "github.com/paperglyph/pdfkit/pdfobj"

// Rect is an annotation's placement rectangle in default user space,
// (x1,y1) the lower-left corner and (x2,y2) the upper-right corner.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

func (r Rect) array() pdfobj.Array {
	return pdfobj.Array{pdfobj.Real(r.X1), pdfobj.Real(r.Y1), pdfobj.Real(r.X2), pdfobj.Real(r.Y2)}
}

// Link is a /Subtype /Link annotation: either a URI link (URL non-empty)
// or an internal link to another page in the same document (TargetPage
// set, URL empty). Exactly one of the two must be set; the document
// assembler resolves TargetPage to a page reference at save time, since
// pages may not exist yet when a link is created.
type Link struct {
	Rect       Rect
	URL        string
	TargetPage int // 0-based page index, only meaningful when URL == ""
}

// URIDict builds the annotation dictionary for a URI link:
// "<< /Type /Annot /Subtype /Link /Rect [...] /Border [0 0 0] /A <<
// /Type /Action /S /URI /URI (url) >> >>".
func (l Link) URIDict() pdfobj.Dict {
	return pdfobj.Dict{
		"Type":    pdfobj.Name("Annot"),
		"Subtype": pdfobj.Name("Link"),
		"Rect":    l.Rect.array(),
		"Border":  pdfobj.Array{pdfobj.Integer(0), pdfobj.Integer(0), pdfobj.Integer(0)},
		"A": pdfobj.Dict{
			"Type": pdfobj.Name("Action"),
			"S":    pdfobj.Name("URI"),
			"URI":  pdfobj.String(l.URL),
		},
	}
}

// PageDict builds the annotation dictionary for an internal link, with
// /Dest pointing at pageRef using the /Fit destination type.
func (l Link) PageDict(pageRef pdfobj.Reference) pdfobj.Dict {
	return pdfobj.Dict{
		"Type":    pdfobj.Name("Annot"),
		"Subtype": pdfobj.Name("Link"),
		"Rect":    l.Rect.array(),
		"Border":  pdfobj.Array{pdfobj.Integer(0), pdfobj.Integer(0), pdfobj.Integer(0)},
		"Dest":    pdfobj.Array{pageRef, pdfobj.Name("Fit")},
	}
}
