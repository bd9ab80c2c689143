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

// This package has been heavily inspired by Sam Trenholme's blog.
// I highly recommend giving it a read:
// https://www.samiam.org/key-schedule.html

// Package key implements the AES key schedule for 128, 192, 256 and
// (experimentally) 512 bit keys.
package key

import (
	"errors"

	"github.com/nullseclab/aesgcm/src/consts"
	"github.com/nullseclab/aesgcm/src/galois"
	"github.com/nullseclab/aesgcm/src/sbox"
)

// ErrInvalidKeyLength is returned by Expand when the key is not one
// of the lengths this build supports.
var ErrInvalidKeyLength = errors.New("aesgcm: invalid key length")

// ExpandedKey is the flat, round-indexed subkey schedule produced by
// Expand: Nr+1 round keys of consts.BLOCK_SIZE bytes each, laid out
// back to back. RoundKey extracts one round's 16 bytes.
type ExpandedKey struct {
	words []byte
	nr    int
}

// Nr reports the number of AES rounds this schedule was built for.
func (xk *ExpandedKey) Nr() int {
	return xk.nr
}

// Zero overwrites the schedule with zero bytes.
func (xk *ExpandedKey) Zero() {
	for i := range xk.words {
		xk.words[i] = 0x00
	}
}

// RoundKey returns the 16 byte subkey for round idx (0 is the initial
// whitening key, Nr is the final round key).
func (xk *ExpandedKey) RoundKey(idx int) []byte {
	return xk.words[idx*consts.BLOCK_SIZE : (idx+1)*consts.BLOCK_SIZE]
}

// Rcon returns the round constant byte Rcon[idx] as used by the AES
// key schedule (Rcon[0] is unused but defined, for the 1-based
// indexing convention). Computed as x^(idx-1) in GF(2^8) rather than
// stored as a table.
func Rcon(idx byte) byte {
	if idx == 0 {
		return 0
	}

	var rcon byte = 1
	for idx != 1 {
		rcon = galois.Xtime(rcon)
		idx--
	}

	return rcon
}

func rotWord(word [consts.WORD_SIZE]byte) [consts.WORD_SIZE]byte {
	return [consts.WORD_SIZE]byte{word[1], word[2], word[3], word[0]}
}

func subWord(word [consts.WORD_SIZE]byte) [consts.WORD_SIZE]byte {
	var subw [consts.WORD_SIZE]byte
	for i := range word {
		subw[i] = sbox.Table[word[i]]
	}
	return subw
}

// Expand runs the AES key schedule over k, a key of length
// consts.KEY_SIZE_128/192/256, or consts.KEY_SIZE_512 on a build with
// the aesgcm_experimental512 tag, and returns the resulting round key
// schedule.
func Expand(k []byte) (*ExpandedKey, error) {
	if !consts.SupportedKeyLen(len(k)) {
		return nil, ErrInvalidKeyLength
	}

	nk := consts.Nk(len(k))
	nr := consts.Nr(len(k))
	totalWords := consts.NB * (nr + 1)

	sched := make([]byte, totalWords*consts.WORD_SIZE)
	copy(sched, k)

	var rconIdx byte = 1
	var t [consts.WORD_SIZE]byte

	for i := nk; i < totalWords; i++ {
		copy(t[:], sched[(i-1)*consts.WORD_SIZE:i*consts.WORD_SIZE])

		switch {
		case i%nk == 0:
			t = rotWord(t)
			t = subWord(t)
			t[0] ^= Rcon(rconIdx)
			rconIdx++
		case nk > 6 && i%nk == 4:
			t = subWord(t)
		}

		for b := 0; b < consts.WORD_SIZE; b++ {
			sched[i*consts.WORD_SIZE+b] = sched[(i-nk)*consts.WORD_SIZE+b] ^ t[b]
		}
	}

	return &ExpandedKey{words: sched, nr: nr}, nil
}
