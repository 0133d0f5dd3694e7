package bytescan

import (
	"encoding/binary"
	"math/bits"
)

// SWAR constants: one bit per lane in the low position and in the high
// (sign) position of each of the 8 byte lanes of a uint64.
const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// broadcast8 replicates b into every byte lane of a uint64, the 8-lane
// equivalent of a vector broadcast.
func broadcast8(b byte) uint64 {
	return uint64(b) * lo8
}

// zeroByteBits returns a word with the high bit set in the lane of the
// lowest zero byte of v. Bits above the lowest zero byte may be spurious
// (a borrow out of a zero lane can flag the lane above it), so the result
// is only good for locating the first zero, not for counting or reverse
// scanning. See zeroByteBitsExact for those.
func zeroByteBits(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// zeroByteBitsExact returns a word with the high bit set in exactly the
// lanes of v that are zero. Slightly more expensive than zeroByteBits but
// carry-free across lanes, so every bit is trustworthy.
func zeroByteBitsExact(v uint64) uint64 {
	const lo7 = 0x7f7f7f7f7f7f7f7f
	return ^(((v & lo7) + lo7) | v | lo7)
}

// memchrGeneric is the bounds-exact SWAR byte search: 8 bytes per step via
// XOR with a broadcast needle and zero-byte detection. Primary
// implementation on non-amd64 platforms and the small-input path on amd64.
func memchrGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := broadcast8(needle)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if m := zeroByteBits(chunk^mask); m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// memchr2Generic searches for either of two needles, both checked against
// the same 8-byte chunk before advancing.
func memchr2Generic(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if b := haystack[i]; b == needle1 || b == needle2 {
				return i
			}
		}
		return -1
	}

	mask1 := broadcast8(needle1)
	mask2 := broadcast8(needle2)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		m := zeroByteBits(chunk^mask1) | zeroByteBits(chunk^mask2)
		if m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < n; i++ {
		if b := haystack[i]; b == needle1 || b == needle2 {
			return i
		}
	}
	return -1
}

// memchr3Generic searches for any of three needles per 8-byte chunk.
func memchr3Generic(haystack []byte, needle1, needle2, needle3 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if b := haystack[i]; b == needle1 || b == needle2 || b == needle3 {
				return i
			}
		}
		return -1
	}

	mask1 := broadcast8(needle1)
	mask2 := broadcast8(needle2)
	mask3 := broadcast8(needle3)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		m := zeroByteBits(chunk^mask1) | zeroByteBits(chunk^mask2) | zeroByteBits(chunk^mask3)
		if m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < n; i++ {
		if b := haystack[i]; b == needle1 || b == needle2 || b == needle3 {
			return i
		}
	}
	return -1
}
