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

import "github.com/xdg-go/stringprep"

// PreparePassword normalizes a Unicode password with SASLprep. Callers
// that accept passwords from end users should pass the result, converted
// back with string(...), as EncryptOptions.UserPassword or OwnerPassword,
// so the same password typed in a different Unicode normalization form
// (e.g. NFC vs. NFD on different keyboards/OSes) derives the same
// encryption key. This module implements the R3/R4 (RC4-128, AES-128-CBC)
// revisions, which don't mandate SASLprep the way R6/AES-256 does; the
// normalization is offered as a precaution rather than a requirement.
func PreparePassword(password string) ([]byte, error) {
	prepped, err := stringprep.SASLprep.Prepare(password)
	if err != nil {
		return nil, newError(KindEncryptionConfig, "PreparePassword", err)
	}
	buf := []byte(prepped)
	if len(buf) > 127 {
		buf = buf[:127]
	}
	return buf, nil
}
