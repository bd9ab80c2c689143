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

// Package consts defines constant values shared by the AES-GCM implementation.
package consts

const (
	// Size of the AES block, in bytes, for every supported key size.
	BLOCK_SIZE = 16

	// Size of a key schedule word, in bytes.
	WORD_SIZE = 4

	// Number of words per round key.
	NB = 4

	// Size of the GCM fast-path nonce (96 bits).
	NONCE_SIZE = 12

	// Size of the GCM counter tail, in bytes (32 bits).
	COUNTER_SIZE = BLOCK_SIZE - NONCE_SIZE

	// Size of the full (untruncated) GCM authentication tag.
	TAG_SIZE = 16

	// Supported standard key sizes, in bytes.
	KEY_SIZE_128 = 16
	KEY_SIZE_192 = 24
	KEY_SIZE_256 = 32

	// Non-standard 512 bit key size, live only when this build was
	// compiled with the aesgcm_experimental512 build tag. See
	// Experimental512.
	KEY_SIZE_512 = 64
)

// Nk returns the key length in 32 bit words for a supported key size
// in bytes, or 0 if keyLen is not a supported key length.
func Nk(keyLen int) int {
	if !SupportedKeyLen(keyLen) {
		return 0
	}
	return keyLen / WORD_SIZE
}

// Nr returns the number of AES rounds for a supported key size in
// bytes, or 0 if keyLen is not a supported key length.
//
// https://en.wikipedia.org/wiki/Advanced_Encryption_Standard
func Nr(keyLen int) int {
	switch keyLen {
	case KEY_SIZE_128:
		return 10
	case KEY_SIZE_192:
		return 12
	case KEY_SIZE_256:
		return 14
	case KEY_SIZE_512:
		if Experimental512 {
			return 22
		}
		return 0
	default:
		return 0
	}
}

// SupportedKeyLen reports whether keyLen is a key length this build
// accepts for key expansion.
func SupportedKeyLen(keyLen int) bool {
	switch keyLen {
	case KEY_SIZE_128, KEY_SIZE_192, KEY_SIZE_256:
		return true
	case KEY_SIZE_512:
		return Experimental512
	default:
		return false
	}
}

// ExpKeySize returns the total size, in bytes, of the expanded round
// key schedule for a supported key size, or 0 if keyLen is not
// supported.
func ExpKeySize(keyLen int) int {
	nr := Nr(keyLen)
	if nr == 0 {
		return 0
	}
	return BLOCK_SIZE * (nr + 1)
}
