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

package key

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/nullseclab/aesgcm/src/consts"
)

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

// FIPS-197 appendix A.1: the AES-128 key expansion worked example.
// The last round key (round 10, i.e. subkey[10]) is given explicitly.
func TestExpandAES128LastRoundKey(t *testing.T) {
	k := unhex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	want := unhex(t, "d014f9a8c9ee2589e13f0cc8b6630ca6")

	xk, err := Expand(k)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	if xk.Nr() != 10 {
		t.Fatalf("Nr() = %d, want 10", xk.Nr())
	}

	if got := xk.RoundKey(10); !bytes.Equal(got, want) {
		t.Fatalf("RoundKey(10) = %x, want %x", got, want)
	}
}

func TestExpandRoundKey0IsTheKeyItself(t *testing.T) {
	k := unhex(t, "000102030405060708090a0b0c0d0e0f")

	xk, err := Expand(k)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	if got := xk.RoundKey(0); !bytes.Equal(got, k) {
		t.Fatalf("RoundKey(0) = %x, want %x", got, k)
	}
}

func TestExpandSupportedKeyLengths(t *testing.T) {
	cases := []struct {
		keyLen int
		nr     int
	}{
		{consts.KEY_SIZE_128, 10},
		{consts.KEY_SIZE_192, 12},
		{consts.KEY_SIZE_256, 14},
	}

	for _, c := range cases {
		xk, err := Expand(make([]byte, c.keyLen))
		if err != nil {
			t.Fatalf("Expand(%d bytes): %v", c.keyLen, err)
		}
		if xk.Nr() != c.nr {
			t.Fatalf("Expand(%d bytes).Nr() = %d, want %d", c.keyLen, xk.Nr(), c.nr)
		}
		if got, want := len(xk.RoundKey(c.nr)), consts.BLOCK_SIZE; got != want {
			t.Fatalf("RoundKey(%d) length = %d, want %d", c.nr, got, want)
		}
	}
}

func TestExpandInvalidKeyLength(t *testing.T) {
	_, err := Expand(make([]byte, 20))
	if !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("got err=%v, want ErrInvalidKeyLength", err)
	}
}

func TestRconSequence(t *testing.T) {
	want := []byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
	for i, w := range want {
		if got := Rcon(byte(i)); got != w {
			t.Fatalf("Rcon(%d) = %#02x, want %#02x", i, got, w)
		}
	}
}

func TestZero(t *testing.T) {
	xk, err := Expand(make([]byte, consts.KEY_SIZE_128))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	xk.Zero()

	for i := 0; i <= xk.Nr(); i++ {
		for _, b := range xk.RoundKey(i) {
			if b != 0x00 {
				t.Fatalf("round key %d not fully zeroed", i)
			}
		}
	}
}
