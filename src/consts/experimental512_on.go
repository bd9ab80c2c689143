//go:build aesgcm_experimental512

package consts

// Experimental512 enables the non-standard 64 byte / 512 bit key and
// its 22 round schedule when this build carries the
// aesgcm_experimental512 tag.
//
// This key size has no cryptanalytic pedigree and is not part of the
// AES standard. Do not enable it outside of experimentation.
const Experimental512 = true
