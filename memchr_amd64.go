//go:build amd64

// Package bytescan provides SIMD-accelerated byte-search primitives: first and
// last occurrence of a byte, multi-needle variants, occurrence counting, ASCII
// detection, and substring search built on top of the byte scanners.
//
// On x86-64 the hot paths are implemented in assembly using 16-byte (SSE2) or
// 32-byte (AVX2) vector comparisons, selected at startup from CPU features.
// Every operation has a pure Go fallback using SWAR (SIMD within a register)
// over uint64 lanes, which is also the primary implementation on other
// architectures.
//
// All search functions return a byte offset from the start of the haystack,
// or -1 when the value is not present, matching the bytes.IndexByte contract.
// They perform no allocation and are safe for concurrent use on shared
// read-only buffers.
package bytescan

import "golang.org/x/sys/cpu"

// CPU feature flags read once at package initialization and used to pick the
// fastest implementation. SSE2 is part of the amd64 baseline and needs no flag.
var (
	hasAVX2   = cpu.X86.HasAVX2
	hasPOPCNT = cpu.X86.HasPOPCNT
)

// Assembly implementations in memchr_amd64.s.
//
// All of them scan aligned vector chunks: the start pointer is rounded down to
// the chunk width, lanes before the haystack are masked out of the first
// movemask, and a match in the final chunk is discarded when it lands at or
// past haystack+len. Aligned whole-chunk loads may touch bytes outside the
// slice but never cross a page boundary, so they cannot fault.

//go:noescape
func memchrSSE2(haystack []byte, needle byte) int

//go:noescape
func memchrAVX2(haystack []byte, needle byte) int

//go:noescape
func memchr2AVX2(haystack []byte, needle1, needle2 byte) int

//go:noescape
func memchr3AVX2(haystack []byte, needle1, needle2, needle3 byte) int

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Equivalent to bytes.IndexByte. With AVX2 available it compares 32 bytes per
// iteration, otherwise 16 bytes with SSE2; inputs shorter than one vector
// chunk go straight to the SWAR fallback since the vector setup cost would
// dominate.
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if hasAVX2 && len(haystack) >= 32 {
		return memchrAVX2(haystack, needle)
	}
	if len(haystack) >= 16 {
		return memchrSSE2(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present.
//
// Both needles are checked in the same vector pass, so the cost is the same
// as a single-needle search. The lowest matching offset wins regardless of
// which needle matched.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if hasAVX2 && len(haystack) >= 32 {
		return memchr2AVX2(haystack, needle1, needle2)
	}
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first instance of needle1, needle2, or
// needle3 in haystack, or -1 if none are present.
//
// Useful for delimiter and whitespace scanning where a small byte class is
// cheaper to test directly than through a lookup table. The lowest matching
// offset wins regardless of which needle matched.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if hasAVX2 && len(haystack) >= 32 {
		return memchr3AVX2(haystack, needle1, needle2, needle3)
	}
	return memchr3Generic(haystack, needle1, needle2, needle3)
}
