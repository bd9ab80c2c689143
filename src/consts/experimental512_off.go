//go:build !aesgcm_experimental512

package consts

// Experimental512 is false unless this build carries the
// aesgcm_experimental512 tag. See experimental512_on.go.
const Experimental512 = false
