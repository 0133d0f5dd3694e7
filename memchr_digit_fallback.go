//go:build !amd64

package bytescan

// MemchrDigit returns the index of the first ASCII digit [0-9] in haystack,
// or -1 if no digit is present. Only the bytes 0x30-0x39 match; Unicode
// digits do not.
func MemchrDigit(haystack []byte) int {
	return memchrDigitGeneric(haystack)
}

// MemchrDigitAt returns the index of the first ASCII digit at or after
// position at, as an absolute index into haystack, or -1 if there is none
// or at is out of bounds.
func MemchrDigitAt(haystack []byte, at int) int {
	if at < 0 || at >= len(haystack) {
		return -1
	}
	pos := memchrDigitGeneric(haystack[at:])
	if pos < 0 {
		return -1
	}
	return pos + at
}
