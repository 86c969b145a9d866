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

package outline

import (
	"bytes"
	"testing"

	"github.com/paperglyph/pdfkit/pdfobj"
)

func TestBuildTreeEmptyOmitsOutline(t *testing.T) {
	w := pdfobj.NewObjectWriter()
	ref, ok := BuildTree(w, nil, nil)
	if ok {
		t.Fatal("BuildTree with no entries should report ok=false")
	}
	if ref != 0 {
		t.Fatalf("BuildTree with no entries returned ref %v, want 0", ref)
	}
}

func TestBuildTreeWiresSiblings(t *testing.T) {
	w := pdfobj.NewObjectWriter()
	page0 := w.Alloc()
	page1 := w.Alloc()
	w.AddDict(page0, pdfobj.Dict{"Type": pdfobj.Name("Page")})
	w.AddDict(page1, pdfobj.Dict{"Type": pdfobj.Name("Page")})
	pageRefs := []pdfobj.Reference{page0, page1}

	entries := []Entry{
		{Title: "Intro", TargetPage: 0},
		{Title: "Details", TargetPage: 1},
	}

	root, ok := BuildTree(w, entries, pageRefs)
	if !ok {
		t.Fatal("BuildTree with entries should report ok=true")
	}

	catalogRef := w.Alloc()
	w.SetCatalog(catalogRef)
	w.AddDict(catalogRef, pdfobj.Dict{
		"Type": pdfobj.Name("Catalog"), "Outlines": root,
	})

	out := w.Build()
	if !bytes.Contains(out, []byte("/Type /Outlines")) {
		t.Fatal("missing root Outlines dict")
	}
	if !bytes.Contains(out, []byte("/Count 2")) {
		t.Fatal("root outline Count must equal the number of entries")
	}
	if !bytes.Contains(out, []byte("(Intro)")) || !bytes.Contains(out, []byte("(Details)")) {
		t.Fatal("entry titles missing from output")
	}
}
