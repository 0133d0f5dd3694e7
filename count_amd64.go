//go:build amd64

package bytescan

// countAVX2 is implemented in count_amd64.s. It shares the aligned-chunk
// layout of the memchr routines but accumulates POPCNT of each movemask
// instead of stopping at the first hit; out-of-range lanes at both ends are
// masked out so they never contribute to the count.
//
//go:noescape
func countAVX2(haystack []byte, needle byte) int

// Count returns the number of instances of needle in haystack.
//
// Equivalent to bytes.Count with a one-byte separator. The AVX2 path counts
// 32 lanes per iteration with a single movemask+POPCNT.
func Count(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return 0
	}
	if hasAVX2 && hasPOPCNT && len(haystack) >= 32 {
		return countAVX2(haystack, needle)
	}
	return countGeneric(haystack, needle)
}
