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
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rc4"
	"errors"
	"io"
)

// Cipher selects the Standard Security Handler's crypt filter method.
type Cipher int

const (
	// CipherRC4 is /V 2 /R 3, 128-bit RC4.
	CipherRC4 Cipher = iota
	// CipherAES is /V 4 /R 4, AES-128-CBC under the /StdCF crypt filter.
	CipherAES
)

// passwdPad is the 32-byte padding string from the Standard Security
// Handler algorithm (PDF 1.7 spec, Algorithm 3.2, step a).
var passwdPad = []byte{
	0x28, 0xBF, 0x4E, 0x5E, 0x4E, 0x75, 0x8A, 0x41,
	0x64, 0x00, 0x4E, 0x56, 0xFF, 0xFA, 0x01, 0x08,
	0x2E, 0x2E, 0x00, 0xB6, 0xD0, 0x68, 0x3E, 0x80,
	0x2F, 0x0C, 0xA9, 0xFE, 0x64, 0x53, 0x69, 0x7A,
}

func padPassword(pw []byte) []byte {
	out := make([]byte, 32)
	n := copy(out, pw)
	copy(out[n:], passwdPad)
	return out
}

// EncryptOptions configures a document's at-rest encryption.  Passing it
// through WithEncryption always enables encryption, even when both
// passwords are empty.
type EncryptOptions struct {
	UserPassword  string
	OwnerPassword string
	Cipher        Cipher
	Permissions   Perm
	// EncryptMetadata is written to the /Encrypt dictionary (R>=4 only);
	// when it is false, key derivation appends the 0xFFFFFFFF suffix.
	EncryptMetadata bool
}

// Perm is the 32-bit Standard Security Handler permission word, stored as
// an unsigned bit field here and converted to the PDF signed representation
// on output.
type Perm uint32

const (
	PermPrint      Perm = 1 << 2 // bit 3
	PermModify     Perm = 1 << 3 // bit 4
	PermCopy       Perm = 1 << 4 // bit 5
	PermAnnotate   Perm = 1 << 5 // bit 6
	PermFillForms  Perm = 1 << 8 // bit 9
	PermExtract    Perm = 1 << 9 // bit 10
	PermAssemble   Perm = 1 << 10 // bit 11
	PermPrintHiRes Perm = 1 << 11 // bit 12
)

// reservedPermBits are required to be 1 per the PDF spec's Table 22.
const reservedPermBits = 0xFFFFF0C0

func (p Perm) toSigned32() int32 {
	bits := uint32(p) | reservedPermBits
	return int32(bits)
}

// encryptionState is the per-document key material derived at construction
// time.  It never changes after NewEncryptionEngine returns.
type encryptionState struct {
	cipher  Cipher
	rev     int // 3 for RC4, 4 for AES
	fileKey []byte
	o       [32]byte
	u       [32]byte
	p       int32
	encryptMetadata bool
}

// EncryptionEngine derives the file/owner/user keys once per document and
// then transforms each indirect object's strings and stream bodies with a
// key unique to that object, per the Standard Security Handler (revisions
// 3 and 4 of the PDF 1.7 spec).
type EncryptionEngine struct {
	state *encryptionState
}

// NewEncryptionEngine derives keys from opts and the document's 16-byte file
// ID.  Empty passwords are accepted; a Cipher other than CipherRC4 or
// CipherAES fails with KindEncryptionConfig.
func NewEncryptionEngine(opts EncryptOptions, fileID [16]byte) (*EncryptionEngine, error) {
	if opts.Cipher != CipherRC4 && opts.Cipher != CipherAES {
		return nil, newError(KindEncryptionConfig, "NewEncryptionEngine", errors.New("unsupported cipher"))
	}

	rev := 3
	if opts.Cipher == CipherAES {
		rev = 4
	}

	ownerPadded := padPassword([]byte(opts.OwnerPassword))
	userPadded := padPassword([]byte(opts.UserPassword))

	o := computeO(ownerPadded, userPadded, rev)
	p := opts.Permissions.toSigned32()

	fileKey := computeFileKey(userPadded, o, p, fileID, rev, opts.EncryptMetadata)
	u := computeU(fileKey, fileID, rev)

	return &EncryptionEngine{state: &encryptionState{
		cipher:          opts.Cipher,
		rev:             rev,
		fileKey:         fileKey,
		o:               o,
		u:               u,
		p:               p,
		encryptMetadata: opts.EncryptMetadata,
	}}, nil
}

// computeO implements Algorithm 3: compute the /O entry.
func computeO(ownerPadded, userPadded []byte, rev int) [32]byte {
	h := md5.Sum(ownerPadded)
	key := h[:16]
	if rev >= 3 {
		for i := 0; i < 50; i++ {
			h = md5.Sum(key)
			key = h[:16]
		}
	}

	out := make([]byte, 32)
	copy(out, userPadded)
	rc4XOR(key, out)

	if rev >= 3 {
		iterKey := make([]byte, 16)
		for i := 1; i <= 19; i++ {
			for j := range key {
				iterKey[j] = key[j] ^ byte(i)
			}
			rc4XOR(iterKey, out)
		}
	}

	var result [32]byte
	copy(result[:], out)
	return result
}

// computeFileKey implements Algorithm 2: the file encryption key.
func computeFileKey(userPadded []byte, o [32]byte, p int32, fileID [16]byte, rev int, encryptMetadata bool) []byte {
	h := md5.New()
	h.Write(userPadded)
	h.Write(o[:])
	var pBytes [4]byte
	pBytes[0] = byte(p)
	pBytes[1] = byte(p >> 8)
	pBytes[2] = byte(p >> 16)
	pBytes[3] = byte(p >> 24)
	h.Write(pBytes[:])
	h.Write(fileID[:])
	if rev >= 4 && !encryptMetadata {
		h.Write([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	}
	sum := h.Sum(nil)
	key := sum[:16]

	if rev >= 3 {
		for i := 0; i < 50; i++ {
			sum = md5Sum16(key)
			key = sum
		}
	}
	return key
}

func md5Sum16(key []byte) []byte {
	h := md5.Sum(key)
	out := make([]byte, 16)
	copy(out, h[:])
	return out
}

// computeU implements Algorithm 5 (revision >= 3): the /U entry.
func computeU(fileKey []byte, fileID [16]byte, rev int) [32]byte {
	h := md5.New()
	h.Write(passwdPad)
	h.Write(fileID[:])
	sum := h.Sum(nil)

	rc4XOR(fileKey, sum)

	iterKey := make([]byte, len(fileKey))
	for i := 1; i <= 19; i++ {
		for j := range fileKey {
			iterKey[j] = fileKey[j] ^ byte(i)
		}
		rc4XOR(iterKey, sum)
	}

	var result [32]byte
	copy(result[:16], sum)
	// The spec only requires the trailing 16 bytes to be present; their
	// value is never checked by a reader, so reuse the padding constant's
	// low half rather than burn entropy on them.
	copy(result[16:], passwdPad[:16])
	return result
}

func rc4XOR(key, data []byte) {
	c, err := rc4.NewCipher(key)
	if err != nil {
		panic(err) // key is always 5..16 bytes here, rc4 never rejects it
	}
	c.XORKeyStream(data, data)
}

// objectKey derives the per-object key used to encrypt strings and stream
// bodies belonging to obj/gen, per Algorithm 1.
func (e *EncryptionEngine) objectKey(obj Reference, aesVariant bool) []byte {
	s := e.state
	h := md5.New()
	h.Write(s.fileKey)
	h.Write([]byte{byte(obj), byte(obj >> 8), byte(obj >> 16)})
	h.Write([]byte{0, 0}) // generation is always 0
	if aesVariant {
		h.Write([]byte("sAlT"))
	}
	sum := h.Sum(nil)
	n := len(s.fileKey) + 5
	if n > 16 {
		n = 16
	}
	return sum[:n]
}

// EncryptBytes transforms a string or stream body belonging to obj before
// it is written to the file.  The /Encrypt dictionary's own object must
// never be passed here; the caller (ObjectWriter.Build) skips it by id.
func (e *EncryptionEngine) EncryptBytes(plain []byte, obj Reference) []byte {
	key := e.objectKey(obj, e.state.cipher == CipherAES)

	if e.state.cipher == CipherRC4 {
		out := make([]byte, len(plain))
		copy(out, plain)
		rc4XOR(key, out)
		return out
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(randSource(), iv); err != nil {
		panic(err)
	}

	padded := pkcs7Pad(plain, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cbc := cipher.NewCBCEncrypter(block, iv)
	cbc.CryptBlocks(ciphertext, padded)

	out := make([]byte, 0, len(iv)+len(ciphertext))
	out = append(out, iv...)
	out = append(out, ciphertext...)
	return out
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

// EncryptDict builds the /Encrypt dictionary.  The caller stores it under
// the id passed to ObjectWriter.SetEncryption, which excludes that object
// from the encryption walk.
func (e *EncryptionEngine) EncryptDict() Dict {
	s := e.state
	d := Dict{
		"Filter": Name("Standard"),
		"O":      String(s.o[:]),
		"U":      String(s.u[:]),
		"P":      Integer(s.p),
		"Length": Integer(128),
	}
	if s.cipher == CipherRC4 {
		d["V"] = Integer(2)
		d["R"] = Integer(3)
		return d
	}

	d["V"] = Integer(4)
	d["R"] = Integer(4)
	d["StmF"] = Name("StdCF")
	d["StrF"] = Name("StdCF")
	d["CF"] = Dict{
		"StdCF": Dict{
			"CFM":       Name("AESV2"),
			"AuthEvent": Name("DocOpen"),
			"Length":    Integer(16),
		},
	}
	d["EncryptMetadata"] = Boolean(s.encryptMetadata)
	return d
}
