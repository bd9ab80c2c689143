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

// Package ghash implements GF(2^128) multiplication and the GHASH
// universal hash function used by GCM.
//
// GCM's bit convention is the opposite of the usual big-endian reading
// of a byte string as a polynomial: the most significant bit of byte 0
// is the coefficient of x^0, not x^127. A right shift of the 128 bit
// register by one bit therefore corresponds to multiplying by x^-1 mod
// R, and a 1 bit shifted out of byte 15 triggers reduction by XORing
// the constant 0xe1 (the GCM-bit-order representation of
// x^7+x^2+x+1) into byte 0.
package ghash

import "github.com/nullseclab/aesgcm/src/consts"

// reductionConst is 0xe1, the GCM bit-order representation of the low
// order terms of R = x^128+x^7+x^2+x+1.
const reductionConst = 0xe1

// Mul computes x*y in GF(2^128) modulo R = x^128+x^7+x^2+x+1, using
// the GCM bit convention, and writes the result into dst. x and y are
// taken by value and dst is written only once, at the end, so dst may
// alias either operand.
//
// This is the bit-serial reference algorithm from NIST SP 800-38D
// section 6.3. It is not constant-time: the number of XORs into the
// result depends on x's bit pattern, and the reduction step on y's.
// Update passes the running accumulator (which depends on the hashed
// data) as x and the per-session subkey H as y. Table-based or
// carry-less-multiply replacements must agree with this algorithm on
// every input.
func Mul(dst *[16]byte, x, y [16]byte) {
	var z [16]byte
	v := y

	for i := 0; i < 16; i++ {
		for j := 7; j >= 0; j-- {
			if x[i]&(1<<uint(j)) != 0 {
				for k := range z {
					z[k] ^= v[k]
				}
			}

			lsb := v[15] & 1
			shiftRight(&v)
			if lsb == 1 {
				v[0] ^= reductionConst
			}
		}
	}

	*dst = z
}

// shiftRight shifts the 128 bit register v right by one bit, carrying
// between bytes from low index to high index.
func shiftRight(v *[16]byte) {
	var carry byte
	for i := 0; i < 16; i++ {
		next := v[i] & 1
		v[i] = (v[i] >> 1) | (carry << 7)
		carry = next
	}
}

// Update absorbs data into the running GHASH accumulator s under
// subkey h: s is replaced with GHASH(h, s || blocks(data)), where
// data is split into 16 byte blocks and the final partial block, if
// any, is zero-padded on the right. A zero-length data is a no-op.
func Update(s *[16]byte, h [16]byte, data []byte) {
	for len(data) > 0 {
		var block [consts.BLOCK_SIZE]byte
		n := copy(block[:], data)
		data = data[n:]

		for i := range s {
			s[i] ^= block[i]
		}
		Mul(s, *s, h)
	}
}
