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

// ObjectWriter is pdfobj's linear object-id allocator and file-body
// emitter. It lives there (not here) so that font/resource/annotation/
// outline can accept one as a parameter without importing this package.
type ObjectWriter = pdfobj.ObjectWriter

// NewObjectWriter returns a writer with no objects yet allocated.
func NewObjectWriter() *ObjectWriter { return pdfobj.NewObjectWriter() }

// Serialize renders obj using the grammar rules pdfobj implements. Exposed
// here so existing call sites and tests don't need to import pdfobj
// directly for the rare case of serializing one value outside a full
// document build.
func Serialize(obj Object) string { return pdfobj.Serialize(obj) }
