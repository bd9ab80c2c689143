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

package aesgcm

import (
	"github.com/nullseclab/aesgcm/src/consts"
	"github.com/nullseclab/aesgcm/src/galois"
	"github.com/nullseclab/aesgcm/src/key"
	"github.com/nullseclab/aesgcm/src/sbox"
)

// Cipher is an AES forward-only block cipher keyed for one of the
// supported key sizes. The block cipher inverse (decryption) is out
// of scope: GCM only ever runs AES forward, on the counter blocks and
// on the all-zero block used to derive H.
type Cipher struct {
	sched *key.ExpandedKey
}

// NewCipher expands k into a round key schedule. k must be 16, 24 or
// 32 bytes, or 64 bytes on a build with the aesgcm_experimental512
// build tag.
func NewCipher(k []byte) (*Cipher, error) {
	sched, err := key.Expand(k)
	if err != nil {
		return nil, ErrInvalidKeyLength
	}

	return &Cipher{sched: sched}, nil
}

// BlockSize returns the AES block size in bytes (always 16).
func (c *Cipher) BlockSize() int {
	return consts.BLOCK_SIZE
}

// Zero overwrites the expanded key schedule with zero bytes. Callers
// that hold a Cipher past the lifetime of a single GCM session should
// call this once they are done with it.
func (c *Cipher) Zero() {
	c.sched.Zero()
}

// EncryptBlock encrypts the 16 byte block src into dst. dst and src
// may alias.
func (c *Cipher) EncryptBlock(dst, src *[consts.BLOCK_SIZE]byte) {
	var state [consts.BLOCK_SIZE]byte
	state = *src

	nr := c.sched.Nr()

	addRoundKey(&state, c.sched.RoundKey(0))

	for round := 1; round < nr; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, c.sched.RoundKey(round))
	}

	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, c.sched.RoundKey(nr))

	*dst = state
}

// subBytes substitutes every byte of the state through the AES
// forward S-box.
func subBytes(state *[consts.BLOCK_SIZE]byte) {
	for i := range state {
		state[i] = sbox.Table[state[i]]
	}
}

// shiftRows cyclically shifts row r of the 4x4 state (column-major,
// state[c*4+r]) left by r positions: row 0 is untouched, row 1 shifts
// by 1, row 2 by 2, row 3 by 3.
func shiftRows(state *[consts.BLOCK_SIZE]byte) {
	shifted := *state

	for r := 1; r < 4; r++ {
		shifted[r+4*0] = state[r+4*((r+0)%4)]
		shifted[r+4*1] = state[r+4*((r+1)%4)]
		shifted[r+4*2] = state[r+4*((r+2)%4)]
		shifted[r+4*3] = state[r+4*((r+3)%4)]
	}

	*state = shifted
}

// mixColumns applies the AES MixColumns matrix over GF(2^8) to each
// column of the state.
func mixColumns(state *[consts.BLOCK_SIZE]byte) {
	mixed := *state

	for i := 0; i < 4; i++ {
		mixed[4*i+0] = galois.Gmul(0x02, state[4*i+0]) ^ galois.Gmul(0x03, state[4*i+1]) ^ state[4*i+2] ^ state[4*i+3]
		mixed[4*i+1] = state[4*i+0] ^ galois.Gmul(0x02, state[4*i+1]) ^ galois.Gmul(0x03, state[4*i+2]) ^ state[4*i+3]
		mixed[4*i+2] = state[4*i+0] ^ state[4*i+1] ^ galois.Gmul(0x02, state[4*i+2]) ^ galois.Gmul(0x03, state[4*i+3])
		mixed[4*i+3] = galois.Gmul(0x03, state[4*i+0]) ^ state[4*i+1] ^ state[4*i+2] ^ galois.Gmul(0x02, state[4*i+3])
	}

	*state = mixed
}

// addRoundKey XORs a 16 byte round key into the state.
func addRoundKey(state *[consts.BLOCK_SIZE]byte, roundKey []byte) {
	for i := range state {
		state[i] ^= roundKey[i]
	}
}
