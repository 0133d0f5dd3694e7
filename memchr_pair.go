package bytescan

import (
	"encoding/binary"
	"math/bits"
)

// MemchrPair finds the first position i where byte1 appears at i and byte2
// appears at i+offset, returning i or -1 if no such position exists.
//
// The two-byte constraint makes this far more selective than a single-byte
// search, which is why Memmem drives its candidate generation through it:
// false candidates require both bytes at exactly the right distance.
func MemchrPair(haystack []byte, byte1, byte2 byte, offset int) int {
	if offset < 0 || len(haystack) <= offset {
		return -1
	}
	if offset == 0 {
		// Same position can only hold one value.
		if byte1 != byte2 {
			return -1
		}
		return Memchr(haystack, byte1)
	}
	return memchrPairGeneric(haystack, byte1, byte2, offset)
}

// memchrPairGeneric checks byte1 in the chunk at i and byte2 in the chunk at
// i+offset; ANDing the two lane masks leaves only positions where both bytes
// sit at the required distance. Both loads stay inside the slice, so the
// loop runs while i+8+offset <= len.
func memchrPairGeneric(haystack []byte, byte1, byte2 byte, offset int) int {
	n := len(haystack)

	if n < 8+offset {
		for i := 0; i+offset < n; i++ {
			if haystack[i] == byte1 && haystack[i+offset] == byte2 {
				return i
			}
		}
		return -1
	}

	mask1 := broadcast8(byte1)
	mask2 := broadcast8(byte2)
	i := 0
	for ; i+8+offset <= n; i += 8 {
		chunk1 := binary.LittleEndian.Uint64(haystack[i:])
		chunk2 := binary.LittleEndian.Uint64(haystack[i+offset:])
		m := zeroByteBitsExact(chunk1^mask1) & zeroByteBitsExact(chunk2^mask2)
		if m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i+offset < n; i++ {
		if haystack[i] == byte1 && haystack[i+offset] == byte2 {
			return i
		}
	}
	return -1
}
