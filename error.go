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

// ErrorKind, Error and ConsistencyError live in pdfobj for the same
// reason the value types in object.go do: font/resource/annotation/
// outline construct them too, and must not import this package to do it.
type (
	ErrorKind        = pdfobj.ErrorKind
	Error            = pdfobj.Error
	ConsistencyError = pdfobj.ConsistencyError
)

const (
	KindInvalidInput      = pdfobj.KindInvalidInput
	KindFontConfig        = pdfobj.KindFontConfig
	KindNoActivePage      = pdfobj.KindNoActivePage
	KindShaperUnavailable = pdfobj.KindShaperUnavailable
	KindImageDecode       = pdfobj.KindImageDecode
	KindEncryptionConfig  = pdfobj.KindEncryptionConfig
)

func newError(kind ErrorKind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}
