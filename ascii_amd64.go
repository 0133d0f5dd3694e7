//go:build amd64

package bytescan

// isASCIIAVX2 is implemented in ascii_amd64.s. It movemasks the high bit of
// 32 bytes per iteration; the final partial chunk is re-read as an
// overlapping in-bounds load, so the routine requires len >= 32.
//
//go:noescape
func isASCIIAVX2(data []byte) bool

// IsASCII reports whether every byte in data is ASCII (< 0x80).
//
// An empty slice is trivially ASCII. Callers typically use this to pick a
// byte-oriented fast path before falling back to rune-aware processing.
func IsASCII(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	if hasAVX2 && len(data) >= 32 {
		return isASCIIAVX2(data)
	}
	return isASCIIGeneric(data)
}
