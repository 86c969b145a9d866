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

// Package outline builds the document outline (bookmark) tree: a flat
// root with /First, /Last and /Count, and one entry per bookmark with
// doubly-linked siblings.
package outline

import "github.com/paperglyph/pdfkit/pdfobj"

// Entry is one bookmark: a title and the page it jumps to.
type Entry struct {
	Title      string
	TargetPage int // 0-based index into the document's page list
}

// BuildTree allocates the root Outlines dict and one dict per entry,
// wires Parent/First/Last/Prev/Next, and writes them all to w. pageRefs
// must already contain a reference for every page (allocated when each
// page was added; the page dicts may be written after this call, as long
// as it is before Build). It
// returns the root reference, or false if entries is empty — an empty
// outline is omitted from the Catalog entirely rather than writing an
// empty tree.
func BuildTree(w pdfobj.Writer, entries []Entry, pageRefs []pdfobj.Reference) (pdfobj.Reference, bool) {
	if len(entries) == 0 {
		return 0, false
	}

	rootRef := w.Alloc()
	entryRefs := make([]pdfobj.Reference, len(entries))
	for i := range entries {
		entryRefs[i] = w.Alloc()
	}

	for i, e := range entries {
		d := pdfobj.Dict{
			"Title":  pdfobj.String(e.Title),
			"Parent": rootRef,
			"Dest":   pdfobj.Array{pageRefs[e.TargetPage], pdfobj.Name("Fit")},
		}
		if i > 0 {
			d["Prev"] = entryRefs[i-1]
		}
		if i < len(entries)-1 {
			d["Next"] = entryRefs[i+1]
		}
		w.AddDict(entryRefs[i], d)
	}

	w.AddDict(rootRef, pdfobj.Dict{
		"Type":  pdfobj.Name("Outlines"),
		"First": entryRefs[0],
		"Last":  entryRefs[len(entryRefs)-1],
		"Count": pdfobj.Integer(len(entries)),
	})

	return rootRef, true
}
