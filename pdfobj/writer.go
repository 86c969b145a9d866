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

package pdfobj

import (
	"bytes"
	"fmt"
	"strings"
)

// Encryptor transforms a string or stream body belonging to obj before it
// is written to the file. *pdfkit.EncryptionEngine satisfies this
// structurally; ObjectWriter only needs the one method, not the engine's
// key-derivation internals, so it depends on the interface rather than
// importing the root package (which would cycle back here).
type Encryptor interface {
	EncryptBytes(plain []byte, obj Reference) []byte
}

// Writer is the subset of *ObjectWriter that font/resource/annotation/
// outline need to place their own objects: allocate an id up front, then
// fill in a dict or stream body for it. Subpackages depend on this
// interface rather than the concrete type for the same reason Encryptor
// is an interface here: it lets them sit below the root package instead
// of importing back up to it.
type Writer interface {
	Alloc() Reference
	AddDict(ref Reference, d Dict) Reference
	AddStream(ref Reference, d Dict, body []byte, alreadyEncoded bool) Reference
}

// pendingObject is a dict or stream object queued for emission, in the
// order Add was called.
type pendingObject struct {
	ref    Reference
	dict   Dict
	stream []byte // nil for a plain dict object
}

// ObjectWriter allocates object ids, stores dict and stream bodies, and
// produces a complete PDF 1.7 byte stream in a single linear emit pass. It
// knows nothing about document semantics (Catalog, Pages, fonts) beyond the
// grammar of names, strings, arrays, dicts, streams and indirect
// references — that layer lives in Document.
type ObjectWriter struct {
	objects   []pendingObject
	nextID    uint32 // 0 is reserved for the free-list head
	root      Reference
	info      Reference
	fileID    [16]byte
	encrypt   Encryptor
	encryptID Reference // 0 if encryption is disabled
}

// NewObjectWriter returns a writer with no objects yet allocated. Object id
// 0 is reserved by the PDF xref grammar for the head of the free list, so
// the first call to Alloc returns 1.
func NewObjectWriter() *ObjectWriter {
	return &ObjectWriter{nextID: 1}
}

// Alloc reserves the next object id without requiring the object's content
// up front. This lets callers build cyclic structures (Pages <-> Kids,
// Outline siblings) by handing out references before the dict that fills
// them exists.
func (w *ObjectWriter) Alloc() Reference {
	id := w.nextID
	w.nextID++
	return Reference(id)
}

// AddDict stores a dict object at the given reference, which must have come
// from Alloc (or will be allocated now if ref is zero).
func (w *ObjectWriter) AddDict(ref Reference, d Dict) Reference {
	if ref == 0 {
		ref = w.Alloc()
	}
	w.objects = append(w.objects, pendingObject{ref: ref, dict: d})
	return ref
}

// AddStream stores a stream object: d is the stream dictionary (Length is
// computed and inserted here, the caller must not set it), body is the raw,
// not-yet-compressed bytes, which are deflated here with /FlateDecode set as
// the Filter, or prepended to a Filter the caller already set.
// alreadyEncoded should be true for bodies the caller has already filtered
// (e.g. JPEG /DCTDecode data); such bodies are embedded verbatim instead of
// being deflated again, and the caller's Filter is kept as-is.
func (w *ObjectWriter) AddStream(ref Reference, d Dict, body []byte, alreadyEncoded bool) Reference {
	if ref == 0 {
		ref = w.Alloc()
	}
	dictCopy := make(Dict, len(d)+2)
	for k, v := range d {
		dictCopy[k] = v
	}

	var final []byte
	if alreadyEncoded {
		final = body
	} else {
		final = deflate(body)
		if existing, ok := dictCopy["Filter"]; ok {
			dictCopy["Filter"] = prependFilter(Name("FlateDecode"), existing)
		} else {
			dictCopy["Filter"] = Name("FlateDecode")
		}
	}
	dictCopy["Length"] = Integer(len(final))

	w.objects = append(w.objects, pendingObject{ref: ref, dict: dictCopy, stream: final})
	return ref
}

func prependFilter(first Name, existing Object) Object {
	switch v := existing.(type) {
	case Name:
		return Array{first, v}
	case Array:
		out := make(Array, 0, len(v)+1)
		out = append(out, first)
		out = append(out, v...)
		return out
	default:
		return first
	}
}

// SetCatalog records the Catalog object's reference for the trailer's
// /Root entry.
func (w *ObjectWriter) SetCatalog(ref Reference) { w.root = ref }

// SetInfo records the document information dictionary's reference for the
// trailer's /Info entry. A zero ref omits /Info.
func (w *ObjectWriter) SetInfo(ref Reference) { w.info = ref }

// SetFileID fixes the trailer's /ID value. NewDocument calls this once per
// document with either a fresh random id or, under WithDeterministic, a
// caller-supplied fixed id.
func (w *ObjectWriter) SetFileID(id [16]byte) { w.fileID = id }

// SetEncryption activates per-object encryption for every object added
// after this call, and for every object added before it — encryption is
// applied uniformly at Build time, not at Add time. encryptRef is the id
// that will hold the /Encrypt dictionary itself; its body is never
// encrypted against itself.
func (w *ObjectWriter) SetEncryption(e Encryptor, encryptRef Reference) {
	w.encrypt = e
	w.encryptID = encryptRef
}

// Build serializes the whole file: header, each object at its recorded
// offset, the xref subsection, and the trailer. It panics if any reference
// appearing in an object's dict was never added via AddDict/AddStream —
// that is a programming error in the caller, not a recoverable condition.
func (w *ObjectWriter) Build() []byte {
	known := make(map[Reference]bool, len(w.objects)+1)
	for _, obj := range w.objects {
		known[obj.ref] = true
	}
	for _, obj := range w.objects {
		checkRefsInDict(obj.dict, known)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\r\n")
	buf.Write([]byte{'%', 0xe2, 0xe3, 0xcf, 0xd3})
	buf.WriteString("\r\n")

	offsets := make(map[uint32]int, len(w.objects))
	maxID := uint32(0)

	for _, obj := range w.objects {
		id := uint32(obj.ref)
		if id > maxID {
			maxID = id
		}
		offsets[id] = buf.Len()

		dict := obj.dict
		body := obj.stream
		if w.encrypt != nil && obj.ref != w.encryptID {
			dict = encryptDictStrings(dict, w.encrypt, obj.ref)
			if body != nil {
				body = w.encrypt.EncryptBytes(body, obj.ref)
				dict = withLength(dict, len(body))
			}
		}

		fmt.Fprintf(&buf, "%d 0 obj\r\n", id)
		var sb strings.Builder
		writeDict(&sb, dict)
		buf.WriteString(sb.String())
		if body != nil {
			buf.WriteString("\r\nstream\r\n")
			buf.Write(body)
			buf.WriteString("\r\nendstream")
		}
		buf.WriteString("\r\nendobj\r\n")
	}

	xrefStart := buf.Len()
	size := maxID + 1
	fmt.Fprintf(&buf, "xref\r\n0 %d\r\n", size)
	buf.WriteString("0000000000 65535 f\r\n")
	for id := uint32(1); id < size; id++ {
		off, ok := offsets[id]
		if !ok {
			panic(&ConsistencyError{Ref: Reference(id)})
		}
		fmt.Fprintf(&buf, "%010d 00000 n\r\n", off)
	}

	trailer := Dict{
		"Size": Integer(size),
		"Root": w.root,
		"ID":   Array{HexString(w.fileID[:]), HexString(w.fileID[:])},
	}
	if w.info != 0 {
		trailer["Info"] = w.info
	}
	if w.encrypt != nil {
		trailer["Encrypt"] = w.encryptID
	}

	buf.WriteString("trailer ")
	var sb strings.Builder
	writeDict(&sb, trailer)
	buf.WriteString(sb.String())
	buf.WriteString("\r\n")
	fmt.Fprintf(&buf, "startxref\r\n%d\r\n", xrefStart)
	buf.WriteString("%%EOF\r\n")

	return buf.Bytes()
}

func withLength(d Dict, n int) Dict {
	out := make(Dict, len(d))
	for k, v := range d {
		out[k] = v
	}
	out["Length"] = Integer(n)
	return out
}

// encryptDictStrings returns a copy of d with every literal string value
// (recursively, through arrays and nested dicts) replaced by its
// ciphertext. Names, numbers and references are never encrypted.
func encryptDictStrings(d Dict, e Encryptor, ref Reference) Dict {
	out := make(Dict, len(d))
	for k, v := range d {
		out[k] = encryptValue(v, e, ref)
	}
	return out
}

func encryptValue(v Object, e Encryptor, ref Reference) Object {
	switch val := v.(type) {
	case String:
		return String(e.EncryptBytes([]byte(val), ref))
	case Array:
		out := make(Array, len(val))
		for i, elem := range val {
			out[i] = encryptValue(elem, e, ref)
		}
		return out
	case Dict:
		return encryptDictStrings(val, e, ref)
	default:
		return v
	}
}

func checkRefsInDict(d Dict, known map[Reference]bool) {
	for _, v := range d {
		checkRefsInValue(v, known)
	}
}

func checkRefsInValue(v Object, known map[Reference]bool) {
	switch val := v.(type) {
	case Reference:
		if val != 0 && !known[val] {
			panic(&ConsistencyError{Ref: val})
		}
	case Array:
		for _, elem := range val {
			checkRefsInValue(elem, known)
		}
	case Dict:
		checkRefsInDict(val, known)
	}
}
