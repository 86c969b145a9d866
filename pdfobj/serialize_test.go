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
	"math"
	"testing"
)

func TestFormatRealTrimsTrailingZeros(t *testing.T) {
	cases := map[float64]string{
		1.0:                  "1",
		1.5:                  "1.5",
		0.0:                  "0",
		math.Copysign(0, -1): "0",
		-2.25:                "-2.25",
		100.001:              "100.001",
	}
	for in, want := range cases {
		got := formatReal(in)
		if got != want {
			t.Errorf("formatReal(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestSerializeArrayNesting(t *testing.T) {
	got := Serialize(Array{Integer(1), Dict{"A": Boolean(true)}})
	want := "[1 << /A true >>]"
	if got != want {
		t.Fatalf("Serialize(Array) = %q, want %q", got, want)
	}
}
