package bytescan

import (
	"encoding/binary"
	"math/bits"
)

// isASCIIGeneric checks the high bit of 8 bytes at once: ASCII bytes are
// exactly those with bit 7 clear, so chunk & hi8 is zero iff the chunk is
// all ASCII.
func isASCIIGeneric(data []byte) bool {
	n := len(data)
	i := 0
	for ; i+8 <= n; i += 8 {
		if binary.LittleEndian.Uint64(data[i:])&hi8 != 0 {
			return false
		}
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}

// FirstNonASCII returns the index of the first byte >= 0x80, or -1 if data
// is entirely ASCII. Useful for locating where UTF-8 sequences begin.
func FirstNonASCII(data []byte) int {
	n := len(data)
	i := 0
	for ; i+8 <= n; i += 8 {
		if m := binary.LittleEndian.Uint64(data[i:]) & hi8; m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return i
		}
	}
	return -1
}

// CountNonASCII returns the number of bytes >= 0x80 in data. The high-bit
// mask has exactly one bit per non-ASCII lane, so a popcount per chunk is
// exact.
func CountNonASCII(data []byte) int {
	n := len(data)
	count := 0
	i := 0
	for ; i+8 <= n; i += 8 {
		count += bits.OnesCount64(binary.LittleEndian.Uint64(data[i:]) & hi8)
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			count++
		}
	}
	return count
}
