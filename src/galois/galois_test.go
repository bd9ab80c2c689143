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

package galois

import "testing"

func TestGmulKnownValues(t *testing.T) {
	cases := []struct{ a, b, want byte }{
		{0x02, 0x87, 0x15},
		{0x01, 0x00, 0x00},
		{0x00, 0xff, 0x00},
		{0x53, 0xca, 0x01}, // from the FIPS-197 MixColumns worked example
	}

	for _, c := range cases {
		if got := Gmul(c.a, c.b); got != c.want {
			t.Errorf("Gmul(%#02x, %#02x) = %#02x, want %#02x", c.a, c.b, got, c.want)
		}
	}
}

func TestGmulCommutative(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			if got, want := Gmul(byte(a), byte(b)), Gmul(byte(b), byte(a)); got != want {
				t.Fatalf("Gmul(%#02x,%#02x)=%#02x != Gmul(%#02x,%#02x)=%#02x", a, b, got, b, a, want)
			}
		}
	}
}

func TestXtimeMatchesGmulByTwo(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got, want := Xtime(byte(a)), Gmul(byte(a), 0x02); got != want {
			t.Fatalf("Xtime(%#02x) = %#02x, want %#02x", a, got, want)
		}
	}
}

func TestXorBlock(t *testing.T) {
	dst := []byte{0xff, 0x00, 0xaa, 0x55}
	src := []byte{0x0f, 0xf0, 0xaa, 0x55}
	XorBlock(dst, src)

	want := []byte{0xf0, 0xf0, 0x00, 0x00}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("byte %d: got %#02x want %#02x", i, dst[i], want[i])
		}
	}
}
