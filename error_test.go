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

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := newError(KindImageDecode, "Page.Image", cause)
	if !errors.Is(e, cause) {
		t.Fatal("errors.Is should see through Error.Unwrap to the cause")
	}
}

func TestErrorMessageIncludesOpAndKind(t *testing.T) {
	e := newError(KindFontConfig, "NewDocument", errors.New("bad font"))
	msg := e.Error()
	if msg == "" {
		t.Fatal("Error() must not be empty")
	}
	for _, want := range []string{"NewDocument", "font configuration error", "bad font"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestConsistencyErrorMessage(t *testing.T) {
	e := &ConsistencyError{Ref: Reference(3)}
	if !strings.Contains(e.Error(), "3 0 R") {
		t.Fatalf("ConsistencyError.Error() = %q, want it to name the reference", e.Error())
	}
}
