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

// Package sbox implements the AES forward substitution table used in
// the SubBytes step and in key expansion. The block cipher inverse
// (decryption) is out of scope for this library, so no inverse table
// is generated.
package sbox

// SBOX is the 256 byte AES forward substitution look up table.
type SBOX [256]byte

// Table is the single forward S-box used by every cipher instance,
// computed once at package initialization and treated as a read-only
// constant from then on.
var Table = generate()

func rotL8(x byte, shift byte) byte {
	return byte((x << shift) | (x >> (8 - shift)))
}

// generate derives the AES S-box from the multiplicative inverse over
// GF(2^8) composed with the affine transform, following the
// classical p/q conjugate-cycle construction.
//
// https://en.wikipedia.org/wiki/Rijndael_S-box
func generate() *SBOX {
	sbox := new(SBOX)

	var p byte = 1
	var q byte = 1

	for {
		if p&0x80 != 0 {
			p = p ^ (p << 1) ^ 0x1b
		} else {
			p = p ^ (p << 1)
		}

		q ^= q << 1
		q ^= q << 2
		q ^= q << 4

		if q&0x80 != 0 {
			q ^= 0x09
		}

		xformed := q ^ rotL8(q, 1) ^ rotL8(q, 2) ^ rotL8(q, 3) ^ rotL8(q, 4)
		sbox[p] = xformed ^ 0x63

		if p == 1 {
			break
		}
	}

	sbox[0] = 0x63

	return sbox
}
