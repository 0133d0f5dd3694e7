package bytescan

// MemchrInTable returns the index of the first byte b in haystack for which
// table[b] is true, or -1 if there is none. The table form covers arbitrary
// byte classes; for classes of up to three bytes Memchr2/Memchr3 are faster,
// and for ASCII digits MemchrDigit has a vector path.
//
// The scan is scalar: a 256-entry predicate has no profitable fixed-width
// vector form without nibble-table shuffles.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	if table == nil {
		return -1
	}
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

// MemchrNotInTable returns the index of the first byte b in haystack for
// which table[b] is false, or -1 if every byte is in the table. Complement
// of MemchrInTable; useful for skipping over a run of class bytes.
func MemchrNotInTable(haystack []byte, table *[256]bool) int {
	if table == nil {
		return -1
	}
	for i, b := range haystack {
		if !table[b] {
			return i
		}
	}
	return -1
}
