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

// Package galois implements GF(2^8) arithmetic used by the AES round
// function (MixColumns) and key schedule (Rcon). GF(2^128) arithmetic
// for GHASH lives in the separate ghash package: the two fields use
// different reduction polynomials and different bit conventions.
package galois

// Gadd is addition in GF(2^8), which is XOR.
func Gadd(a byte, b byte) byte {
	return a ^ b
}

// Xtime multiplies a by x (i.e. 0x02) in GF(2^8) modulo the AES
// reduction polynomial x^8+x^4+x^3+x+1 (0x1b).
func Xtime(a byte) byte {
	hiBitSet := a&0x80 != 0
	a <<= 1
	if hiBitSet {
		a ^= 0x1b
	}
	return a
}

// Gmul multiplies a and b in GF(2^8) modulo x^8+x^4+x^3+x+1, via
// repeated Xtime and conditional accumulation (peasant multiplication).
func Gmul(a byte, b byte) byte {
	var p byte = 0

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		a = Xtime(a)
		b >>= 1
	}

	return p
}

// XorBlock XORs src into dst in place; dst and src must have equal
// length.
func XorBlock(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
