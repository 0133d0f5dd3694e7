package bytescan

// byteFrequencies ranks how common each byte value is in a mix of English
// text, source code and sampled binary data. Lower rank means rarer, which
// makes the byte a better anchor for candidate-driven substring search.
// Same approach as rust-memchr's rare-byte heuristic.
//
// Reference: https://github.com/BurntSushi/memchr
var byteFrequencies = [256]byte{
	// 0x00-0x1F: control characters
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0x20-0x2F: space and punctuation
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	// 0x30-0x3F: digits and punctuation
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	// 0x40-0x4F: '@', A-O
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	// 0x50-0x5F: P-Z, brackets
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	// 0x60-0x6F: backtick, a-o
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	// 0x70-0x7F: p-z, braces
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	// 0x80-0xFF: UTF-8 continuation and high bytes, rare in text
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// ByteRank returns the empirical frequency rank of b. Lower values are
// rarer bytes and better search anchors.
func ByteRank(b byte) byte {
	return byteFrequencies[b]
}

// RareByteInfo describes the two rarest bytes of a needle and where they
// sit, feeding the paired-byte candidate search in Memmem.
type RareByteInfo struct {
	Byte1  byte // rarest byte in the needle
	Index1 int  // its position
	Byte2  byte // second-rarest byte
	Index2 int  // its position
}

// SelectRareBytes picks the two rarest bytes of needle by frequency rank.
// Byte1 is always the rarest; for needles of two or more bytes the two
// indices are always distinct, though the bytes themselves coincide when
// the needle repeats its rarest byte. For an empty or one-byte needle both
// entries describe the same position.
func SelectRareBytes(needle []byte) RareByteInfo {
	n := len(needle)
	if n == 0 {
		return RareByteInfo{}
	}
	if n == 1 {
		return RareByteInfo{Byte1: needle[0], Byte2: needle[0]}
	}

	byte1, idx1 := needle[0], 0
	byte2, idx2 := needle[1], 1
	if byteFrequencies[byte2] < byteFrequencies[byte1] {
		byte1, byte2 = byte2, byte1
		idx1, idx2 = idx2, idx1
	}

	for i := 2; i < n; i++ {
		b := needle[i]
		rank := byteFrequencies[b]
		switch {
		case rank < byteFrequencies[byte1]:
			byte2, idx2 = byte1, idx1
			byte1, idx1 = b, i
		case b != byte1 && rank < byteFrequencies[byte2]:
			byte2, idx2 = b, i
		}
	}

	return RareByteInfo{Byte1: byte1, Index1: idx1, Byte2: byte2, Index2: idx2}
}
