//go:build !amd64

// Package bytescan provides SIMD-accelerated byte-search primitives: first and
// last occurrence of a byte, multi-needle variants, occurrence counting, ASCII
// detection, and substring search built on top of the byte scanners.
//
// On platforms without an assembly fast path every operation runs on the pure
// Go SWAR (SIMD within a register) kernels, which process 8 bytes per step
// using uint64 bitwise operations.
package bytescan

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Equivalent to bytes.IndexByte; this build uses the SWAR kernel.
func Memchr(haystack []byte, needle byte) int {
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present. The lowest matching
// offset wins regardless of which needle matched.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first instance of needle1, needle2, or
// needle3 in haystack, or -1 if none are present. The lowest matching
// offset wins regardless of which needle matched.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	return memchr3Generic(haystack, needle1, needle2, needle3)
}
