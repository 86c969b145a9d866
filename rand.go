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
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"
)

// randOverride lets Document.Save substitute a seeded reader for AES IVs
// under WithDeterministic (which fixes the file ID directly), so that two
// documents built from the same call sequence produce byte-identical
// output.
var randOverride io.Reader

func randSource() io.Reader {
	if randOverride != nil {
		return randOverride
	}
	return rand.Reader
}

// generateFileID returns 16 fresh random bytes for the trailer /ID entry.
func generateFileID() [16]byte {
	var id [16]byte
	_, _ = io.ReadFull(randSource(), id[:])
	return id
}

// deterministicReader is an infinite byte stream derived from a fixed
// seed by hashing seed||counter with SHA-256, one block per 32 bytes
// consumed. Document.Save installs one as randOverride for the duration
// of the final Build() call under WithDeterministic, so AES IVs (the only
// other consumer of randSource, besides the file ID already fixed by the
// caller) stop varying between otherwise-identical runs.
type deterministicReader struct {
	seed    [16]byte
	counter uint64
	buf     []byte
}

func newDeterministicReader(seed [16]byte) *deterministicReader {
	return &deterministicReader{seed: seed}
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.buf) == 0 {
			var block [8]byte
			binary.BigEndian.PutUint64(block[:], r.counter)
			r.counter++
			sum := sha256.Sum256(append(r.seed[:], block[:]...))
			r.buf = append([]byte(nil), sum[:]...)
		}
		c := copy(p[n:], r.buf)
		r.buf = r.buf[c:]
		n += c
	}
	return n, nil
}
