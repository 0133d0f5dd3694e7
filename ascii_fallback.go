//go:build !amd64

package bytescan

// IsASCII reports whether every byte in data is ASCII (< 0x80).
//
// An empty slice is trivially ASCII. This build checks the high bits of 8
// bytes per step with SWAR.
func IsASCII(data []byte) bool {
	return isASCIIGeneric(data)
}
