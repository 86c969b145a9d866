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
	"sort"
	"strconv"
	"strings"
)

// nameNeedsEscape reports whether b must be written as #XX inside a name.
func nameNeedsEscape(b byte) bool {
	switch b {
	case '#', ' ', '\t', '\r', '\n', '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return b < 0x21 || b >= 0x7f
}

func writeName(sb *strings.Builder, n Name) {
	sb.WriteByte('/')
	for i := 0; i < len(n); i++ {
		b := n[i]
		if nameNeedsEscape(b) {
			sb.WriteByte('#')
			if b < 0x10 {
				sb.WriteByte('0')
			}
			sb.WriteString(strconv.FormatInt(int64(b), 16))
		} else {
			sb.WriteByte(b)
		}
	}
}

func writeLiteralString(sb *strings.Builder, s String) {
	sb.WriteByte('(')
	for _, b := range s {
		switch b {
		case '\\', '(', ')':
			sb.WriteByte('\\')
			sb.WriteByte(b)
		case '\r':
			sb.WriteString(`\r`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteByte(b)
		}
	}
	sb.WriteByte(')')
}

func writeHexString(sb *strings.Builder, s HexString) {
	sb.WriteByte('<')
	const hexDigits = "0123456789abcdef"
	for _, b := range s {
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0xf])
	}
	sb.WriteByte('>')
}

// formatReal renders a float64 without an exponent and without more than
// six fractional digits, trimming trailing zeros.  PDF readers are not
// required to understand scientific notation.
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'f', 6, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "" || s == "-0" {
		s = "0"
	}
	return s
}

// writeObject appends the PDF-syntax rendering of obj to sb.  Dict keys are
// emitted in sorted order so that output is deterministic across runs.
func writeObject(sb *strings.Builder, obj Object) {
	switch v := obj.(type) {
	case nil:
		sb.WriteString("null")
	case Null:
		sb.WriteString("null")
	case Boolean:
		if v {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Integer:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case Real:
		sb.WriteString(formatReal(float64(v)))
	case Name:
		writeName(sb, v)
	case String:
		writeLiteralString(sb, v)
	case HexString:
		writeHexString(sb, v)
	case Array:
		sb.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeObject(sb, elem)
		}
		sb.WriteByte(']')
	case Dict:
		writeDict(sb, v)
	case Reference:
		sb.WriteString(v.String())
	case *Stream:
		// A bare *Stream only appears here when embedded directly inside
		// another value during construction; at Build time streams are
		// always top-level indirect objects, handled by writeIndirectObject.
		writeDict(sb, v.Dict)
	default:
		panic("pdfkit: unknown Object implementation")
	}
}

func writeDict(sb *strings.Builder, d Dict) {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	sb.WriteString("<<")
	for _, k := range keys {
		sb.WriteByte(' ')
		writeName(sb, Name(k))
		sb.WriteByte(' ')
		writeObject(sb, d[Name(k)])
	}
	sb.WriteString(" >>")
}

// Serialize renders obj using the grammar rules implemented in this file.
// It is exposed mainly for tests; ObjectWriter calls the unexported helpers
// directly while building the file body.
func Serialize(obj Object) string {
	var sb strings.Builder
	writeObject(&sb, obj)
	return sb.String()
}
