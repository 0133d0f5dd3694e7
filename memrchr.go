package bytescan

import (
	"encoding/binary"
	"math/bits"
)

// Memrchr returns the index of the last instance of needle in haystack,
// or -1 if needle is not present.
//
// Equivalent to bytes.LastIndexByte. The scan walks 8-byte chunks from the
// end of the haystack; within a chunk the highest matching lane wins, which
// requires the carry-free zero mask (the cheap formula can flag lanes above
// a genuine match).
func Memrchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := n - 1; i >= 0; i-- {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := broadcast8(needle)
	i := n
	for i >= 8 {
		i -= 8
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if m := zeroByteBitsExact(chunk^mask); m != 0 {
			return i + (63-bits.LeadingZeros64(m))/8
		}
	}
	for j := i - 1; j >= 0; j-- {
		if haystack[j] == needle {
			return j
		}
	}
	return -1
}
