package bytescan

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. Equivalent to bytes.Index.
//
// Candidates are generated with the vector byte scanners anchored on the
// needle's two rarest bytes (by empirical frequency), then verified with
// bytes.Equal. Rare anchors keep the candidate rate low on text-like data,
// so most of the haystack is covered at byte-scan speed.
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)

	// Empty needle matches at the start, mirroring bytes.Index.
	if needleLen == 0 {
		return 0
	}
	if needleLen > len(haystack) {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}
	return memmemRare(haystack, needle)
}

// memmemRare runs the rare-pair candidate loop: find positions where the
// two rarest needle bytes appear at their needle distance, then verify the
// whole needle there.
func memmemRare(haystack, needle []byte) int {
	haystackLen := len(haystack)
	needleLen := len(needle)
	rare := SelectRareBytes(needle)

	// Order the pair by needle position so the pair offset is non-negative.
	b1, i1 := rare.Byte1, rare.Index1
	b2, i2 := rare.Byte2, rare.Index2
	if i2 < i1 {
		b1, i1, b2, i2 = b2, i2, b1, i1
	}

	at := 0
	for {
		pos := MemchrPair(haystack[at:], b1, b2, i2-i1)
		if pos < 0 {
			return -1
		}
		pos += at

		start := pos - i1
		if start >= 0 && start+needleLen <= haystackLen &&
			bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}

		at = pos + 1
		if at >= haystackLen {
			return -1
		}
	}
}
