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

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf16"
)

// buildToUnicodeCMap renders the minimal conforming CMap:
// one bfchar line per (gid, text) pair, deduplicated by gid (first
// occurrence wins) and sorted by gid for deterministic output.
func buildToUnicodeCMap(pairs []pair) []byte {
	seen := make(map[uint16]bool, len(pairs))
	dedup := make([]pair, 0, len(pairs))
	for _, p := range pairs {
		if seen[p.gid] {
			continue
		}
		seen[p.gid] = true
		dedup = append(dedup, p)
	}
	sort.Slice(dedup, func(i, j int) bool { return dedup[i].gid < dedup[j].gid })

	var body strings.Builder
	for _, p := range dedup {
		fmt.Fprintf(&body, "<%04x> <%s>\n", p.gid, utf16HexOf(p.text))
	}

	var sb strings.Builder
	sb.WriteString("/CIDInit /ProcSet findresource begin\n")
	sb.WriteString("12 dict begin begincmap\n")
	sb.WriteString("/CIDSystemInfo << /Registry (Adobe) /Ordering (UCS) /Supplement 0 >> def\n")
	sb.WriteString("/CMapName /Identity-H def\n")
	sb.WriteString("1 begincodespacerange <0000> <FFFF> endcodespacerange\n")
	fmt.Fprintf(&sb, "%d beginbfchar\n", len(dedup))
	sb.WriteString(body.String())
	sb.WriteString("endbfchar\n")
	sb.WriteString("endcmap\n")
	sb.WriteString("CMapName currentdict /CMap defineresource pop\n")
	sb.WriteString("end end\n")
	return []byte(sb.String())
}

// utf16HexOf renders s as UTF-16BE hex digits, expanding code points above
// U+FFFF into a surrogate pair as the bfchar grammar requires.
func utf16HexOf(s string) string {
	units := utf16.Encode([]rune(s))
	var sb strings.Builder
	for _, u := range units {
		fmt.Fprintf(&sb, "%04x", u)
	}
	return sb.String()
}
