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

// Package counter implements the GCM counter register: a 16 byte
// block whose leftmost 12 bytes are fixed for the lifetime of a
// (key, IV) session and whose rightmost 4 bytes are a big-endian
// 32 bit counter that wraps modulo 2^32.
package counter

import "github.com/nullseclab/aesgcm/src/consts"

// Counter is a GCM counter register.
type Counter struct {
	block [consts.BLOCK_SIZE]byte
}

// New returns a Counter whose register is initialized to block
// (typically J0).
func New(block [consts.BLOCK_SIZE]byte) *Counter {
	return &Counter{block: block}
}

// Block returns the current 16 byte register. The returned slice
// aliases the Counter's internal state and is only valid until the
// next call to Increment.
func (c *Counter) Block() []byte {
	return c.block[:]
}

// Increment adds 1 to the rightmost 32 bit big-endian tail of the
// register, wrapping silently on overflow. The leftmost 12 bytes are
// never touched: GCM fixes them per (key, IV) and only the tail
// counts blocks.
func (c *Counter) Increment() {
	for i := consts.BLOCK_SIZE - 1; i >= consts.NONCE_SIZE; i-- {
		c.block[i]++
		if c.block[i] != 0 {
			break
		}
	}
}
