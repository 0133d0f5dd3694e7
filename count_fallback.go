//go:build !amd64

package bytescan

// Count returns the number of instances of needle in haystack.
//
// Equivalent to bytes.Count with a one-byte separator; this build counts 8
// bytes per step with the carry-free SWAR zero mask.
func Count(haystack []byte, needle byte) int {
	return countGeneric(haystack, needle)
}
