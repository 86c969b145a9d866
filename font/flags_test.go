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

package font

import "testing"

func TestDeriveFlagsAlwaysSymbolic(t *testing.T) {
	f := deriveFlags(false, false)
	if f&FlagSymbolic == 0 {
		t.Fatal("a composite Identity-H font must always set Symbolic")
	}
	if f&FlagNonsymbolic != 0 {
		t.Fatal("Nonsymbolic must not be set alongside Symbolic")
	}
}

func TestDeriveFlagsFixedPitch(t *testing.T) {
	f := deriveFlags(true, false)
	if f&FlagFixedPitch == 0 {
		t.Fatal("FlagFixedPitch must be set when fixedPitch is true")
	}
}

func TestDeriveFlagsItalic(t *testing.T) {
	f := deriveFlags(false, true)
	if f&FlagItalic == 0 {
		t.Fatal("FlagItalic must be set when italic is true")
	}
	if f&FlagFixedPitch != 0 {
		t.Fatal("FlagFixedPitch must not be set when fixedPitch is false")
	}
}
