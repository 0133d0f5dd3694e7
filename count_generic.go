package bytescan

import (
	"encoding/binary"
	"math/bits"
)

// countGeneric tallies matches 8 bytes at a time. Counting needs one
// trustworthy bit per matching lane, so it uses the exact zero mask rather
// than the cheap first-match formula.
func countGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	count := 0
	i := 0
	if n >= 8 {
		mask := broadcast8(needle)
		for ; i+8 <= n; i += 8 {
			chunk := binary.LittleEndian.Uint64(haystack[i:])
			count += bits.OnesCount64(zeroByteBitsExact(chunk^mask))
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			count++
		}
	}
	return count
}
