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

import "errors"

// Sentinel errors returned by this package. Callers should compare
// against these with errors.Is rather than inspecting error text:
// ErrAuthenticationFailed never distinguishes a bad tag from bad AAD
// from a tampered ciphertext.
var (
	// ErrInvalidKeyLength is returned by NewCipher and NewGCM when the key is not one
	// of the lengths this build supports (16, 24 or 32 bytes, plus
	// 64 bytes on a build with the aesgcm_experimental512 tag).
	ErrInvalidKeyLength = errors.New("aesgcm: invalid key length")

	// ErrInvalidArgument is returned by Seal and Open when a required
	// buffer is missing or a length constraint is violated (for
	// example a zero-length IV).
	ErrInvalidArgument = errors.New("aesgcm: invalid argument")

	// ErrAuthenticationFailed is returned by Open when the computed
	// tag does not match the supplied tag. The destination plaintext
	// buffer is zeroed before this error is returned.
	ErrAuthenticationFailed = errors.New("aesgcm: authentication failed")
)
