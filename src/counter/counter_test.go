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

package counter

import (
	"bytes"
	"testing"

	"github.com/nullseclab/aesgcm/src/consts"
)

func TestIncrementBasic(t *testing.T) {
	var j0 [consts.BLOCK_SIZE]byte
	j0[15] = 0x01

	c := New(j0)
	c.Increment()

	want := j0
	want[15] = 0x02

	if !bytes.Equal(c.Block(), want[:]) {
		t.Fatalf("Block() = %x, want %x", c.Block(), want)
	}
}

// The tail is 32 bits wide: incrementing 0xffffffff must wrap to
// 0x00000000 without touching the fixed leftmost 12 bytes.
func TestIncrementWrapsTail(t *testing.T) {
	var j0 [consts.BLOCK_SIZE]byte
	for i := range j0[:consts.NONCE_SIZE] {
		j0[i] = 0xaa
	}
	for i := consts.NONCE_SIZE; i < consts.BLOCK_SIZE; i++ {
		j0[i] = 0xff
	}

	c := New(j0)
	c.Increment()

	want := j0
	for i := consts.NONCE_SIZE; i < consts.BLOCK_SIZE; i++ {
		want[i] = 0x00
	}

	if !bytes.Equal(c.Block(), want[:]) {
		t.Fatalf("Block() after wraparound = %x, want %x", c.Block(), want)
	}

	for i := 0; i < consts.NONCE_SIZE; i++ {
		if c.Block()[i] != 0xaa {
			t.Fatalf("byte %d of fixed prefix was modified: %#02x", i, c.Block()[i])
		}
	}
}

func TestIncrementCarriesAcrossByteBoundary(t *testing.T) {
	var j0 [consts.BLOCK_SIZE]byte
	j0[14] = 0x00
	j0[15] = 0xff

	c := New(j0)
	c.Increment()

	if c.Block()[14] != 0x01 || c.Block()[15] != 0x00 {
		t.Fatalf("Block() = %x, want carry into byte 14", c.Block())
	}
}
