//go:build amd64

package bytescan

// memchrDigitAVX2 is implemented in memchr_digit_amd64.s. The range test is
// branch-free per lane: subtract '0', then a lane matches iff the unsigned
// result is <= 9, computed as min(x, 9) == x. Chunk walk and lane masking
// are identical to memchrAVX2.
//
//go:noescape
func memchrDigitAVX2(haystack []byte) int

// MemchrDigit returns the index of the first ASCII digit [0-9] in haystack,
// or -1 if no digit is present. Only the bytes 0x30-0x39 match; Unicode
// digits do not.
func MemchrDigit(haystack []byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if hasAVX2 && len(haystack) >= 32 {
		return memchrDigitAVX2(haystack)
	}
	return memchrDigitGeneric(haystack)
}

// MemchrDigitAt returns the index of the first ASCII digit at or after
// position at, as an absolute index into haystack, or -1 if there is none
// or at is out of bounds.
func MemchrDigitAt(haystack []byte, at int) int {
	if at < 0 || at >= len(haystack) {
		return -1
	}
	pos := MemchrDigit(haystack[at:])
	if pos < 0 {
		return -1
	}
	return pos + at
}
