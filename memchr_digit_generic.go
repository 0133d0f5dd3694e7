package bytescan

// memchrDigitGeneric is the scalar digit scan. The subtract-and-compare form
// mirrors the vector kernel and compiles to a single unsigned range check.
func memchrDigitGeneric(haystack []byte) int {
	for i, b := range haystack {
		if b-'0' <= 9 {
			return i
		}
	}
	return -1
}
