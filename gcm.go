// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package aesgcm implements the AES block cipher and the GCM
// authenticated-encryption-with-associated-data construction on top
// of it, following NIST SP 800-38D.
//
// This is a one-shot, in-memory AEAD core: no streaming, no key
// management, no IV generation. Callers own a GCM context (an
// expanded key schedule plus the derived hash subkey), supply a fresh
// IV for every call to Seal, and pass Open the same IV that Seal used.
//
// https://nvlpubs.nist.gov/nistpubs/Legacy/SP/nistspecialpublication800-38d.pdf
package aesgcm

import (
	"encoding/binary"

	"github.com/nullseclab/aesgcm/src/consts"
	"github.com/nullseclab/aesgcm/src/counter"
	"github.com/nullseclab/aesgcm/src/ghash"
)

// GCM is a GCM session bound to one key: it owns the expanded AES key
// schedule and the GHASH subkey H, both pure functions of the key and
// immutable for the lifetime of the context. A *GCM may be shared
// read-only across goroutines; the GHASH accumulator, counter
// register and I/O buffers used inside Seal/Open are exclusive to
// each call and never touch the shared context.
type GCM struct {
	cipher *Cipher
	h      [consts.BLOCK_SIZE]byte
}

// NewGCM expands k into a round key schedule and derives the GHASH
// subkey H = AES_K(0^128). k must be 16, 24 or 32 bytes (or 64 bytes
// on a build with the aesgcm_experimental512 tag); any other length
// returns ErrInvalidKeyLength.
func NewGCM(k []byte) (*GCM, error) {
	c, err := NewCipher(k)
	if err != nil {
		return nil, err
	}

	var zero, h [consts.BLOCK_SIZE]byte
	c.EncryptBlock(&h, &zero)

	return &GCM{cipher: c, h: h}, nil
}

// TagSize is the size, in bytes, of the tag produced by Seal and
// required by Open. GCM tag truncation is not supported.
func (g *GCM) TagSize() int {
	return consts.TAG_SIZE
}

// Zero overwrites the key schedule and the hash subkey with zero
// bytes. Call this once a GCM context is no longer needed.
func (g *GCM) Zero() {
	g.cipher.Zero()
	g.h = [consts.BLOCK_SIZE]byte{}
}

// deriveJ0 computes the initial counter block for iv per SP 800-38D
// section 7.1. A 96 bit IV takes the fast path (IV concatenated with
// a 32 bit big-endian 1); any other length is hashed with two GHASH
// passes over a freshly zeroed accumulator, first the raw IV
// (zero-padded to a block boundary internally by ghash.Update), then
// a dedicated 16 byte block of 8 zero bytes followed by the IV length
// in bits.
func (g *GCM) deriveJ0(iv []byte) [consts.BLOCK_SIZE]byte {
	var j0 [consts.BLOCK_SIZE]byte

	if len(iv) == consts.NONCE_SIZE {
		copy(j0[:consts.NONCE_SIZE], iv)
		j0[consts.BLOCK_SIZE-1] = 1
		return j0
	}

	var s [consts.BLOCK_SIZE]byte
	ghash.Update(&s, g.h, iv)

	var lenBlock [consts.BLOCK_SIZE]byte
	binary.BigEndian.PutUint64(lenBlock[consts.BLOCK_SIZE/2:], uint64(len(iv))*8)
	ghash.Update(&s, g.h, lenBlock[:])

	return s
}

// ctrKeystream XORs the AES-CTR keystream, starting from ctr's
// current register value, into buf in place. The register's rightmost
// 32 bits are incremented once per 16 byte block, wrapping modulo
// 2^32; the leftmost 96 bits are never touched.
func (g *GCM) ctrKeystream(buf []byte, ctr *counter.Counter) {
	var block, keystream [consts.BLOCK_SIZE]byte

	for i := 0; i < len(buf); i += consts.BLOCK_SIZE {
		copy(block[:], ctr.Block())
		g.cipher.EncryptBlock(&keystream, &block)
		ctr.Increment()

		n := consts.BLOCK_SIZE
		if rem := len(buf) - i; rem < n {
			n = rem
		}

		for j := 0; j < n; j++ {
			buf[i+j] ^= keystream[j]
		}
	}
}

// lengthBlock builds the 16 byte GHASH length block: an 8 byte
// big-endian bit length of aad followed by an 8 byte big-endian bit
// length of the ciphertext/plaintext.
func lengthBlock(aadLen, dataLen int) [consts.BLOCK_SIZE]byte {
	var block [consts.BLOCK_SIZE]byte
	binary.BigEndian.PutUint64(block[0:8], uint64(aadLen)*8)
	binary.BigEndian.PutUint64(block[8:16], uint64(dataLen)*8)
	return block
}

// Seal encrypts and authenticates pt under iv and aad, returning the
// ciphertext (same length as pt) and a 16 byte authentication tag.
// aad and pt may both be empty. iv must be at least 1 byte; 12 bytes
// selects the fast J0 path, any other positive length selects the
// GHASH-based derivation.
func (g *GCM) Seal(iv, aad, pt []byte) (ct, tag []byte, err error) {
	if len(iv) == 0 {
		return nil, nil, ErrInvalidArgument
	}

	j0 := g.deriveJ0(iv)

	var ek0 [consts.BLOCK_SIZE]byte
	g.cipher.EncryptBlock(&ek0, &j0)

	var s [consts.BLOCK_SIZE]byte
	ghash.Update(&s, g.h, aad)

	ct = make([]byte, len(pt))
	if len(pt) > 0 {
		copy(ct, pt)
		ctr := counter.New(j0)
		ctr.Increment()
		g.ctrKeystream(ct, ctr)
	}

	ghash.Update(&s, g.h, ct)

	lb := lengthBlock(len(aad), len(pt))
	ghash.Update(&s, g.h, lb[:])

	tag = make([]byte, consts.TAG_SIZE)
	for i := range tag {
		tag[i] = s[i] ^ ek0[i]
	}

	return ct, tag, nil
}

// Open verifies tag against iv, aad and ct, and if (and only if) it
// matches, decrypts ct and returns the plaintext. On any mismatch it
// returns ErrAuthenticationFailed and a plaintext buffer of len(ct)
// zero bytes; no plaintext byte is ever derived from, or exposed
// alongside, a ciphertext that fails authentication. tag must be
// exactly 16 bytes.
func (g *GCM) Open(iv, aad, ct, tag []byte) (pt []byte, err error) {
	if len(iv) == 0 || len(tag) != consts.TAG_SIZE {
		return nil, ErrInvalidArgument
	}

	j0 := g.deriveJ0(iv)

	var ek0 [consts.BLOCK_SIZE]byte
	g.cipher.EncryptBlock(&ek0, &j0)

	var s [consts.BLOCK_SIZE]byte
	ghash.Update(&s, g.h, aad)
	ghash.Update(&s, g.h, ct)

	lb := lengthBlock(len(aad), len(ct))
	ghash.Update(&s, g.h, lb[:])

	computed := make([]byte, consts.TAG_SIZE)
	for i := range computed {
		computed[i] = s[i] ^ ek0[i]
	}

	// make always zero-initializes; this buffer is already all zero
	// bytes if we return below without populating it.
	pt = make([]byte, len(ct))

	if !constantTimeEqual(computed, tag) {
		return pt, ErrAuthenticationFailed
	}

	copy(pt, ct)
	ctr := counter.New(j0)
	ctr.Increment()
	g.ctrKeystream(pt, ctr)

	return pt, nil
}
