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

func TestBuildToUnicodeCMapDedupsAndSorts(t *testing.T) {
	pairs := []pair{
		{gid: 5, text: "b"},
		{gid: 3, text: "a"},
		{gid: 5, text: "duplicate-should-be-dropped"},
	}
	out := string(buildToUnicodeCMap(pairs))

	if want := "2 beginbfchar\n"; !contains(out, want) {
		t.Errorf("expected %q in output, got:\n%s", want, out)
	}
	idxA := indexOf(out, "<0003>")
	idxB := indexOf(out, "<0005>")
	if idxA == -1 || idxB == -1 || idxA > idxB {
		t.Errorf("expected gid 0003 before 0005, got:\n%s", out)
	}
}

func TestUTF16HexOfSurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE requires a surrogate pair.
	got := utf16HexOf(string(rune(0x1F600)))
	want := "d83dde00"
	if got != want {
		t.Errorf("utf16HexOf = %q, want %q", got, want)
	}
}

func contains(s, sub string) bool { return indexOf(s, sub) >= 0 }

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
