package bytescan

import "testing"

func TestByteRankOrdering(t *testing.T) {
	// Sanity-check the empirical table: common text bytes must rank above
	// rare ones, since the ordering drives anchor selection.
	rare := []byte{'Q', 'Z', '~', 0x00, 0x80}
	common := []byte{' ', 'e', 'a', 't', 's'}

	for _, r := range rare {
		for _, c := range common {
			if ByteRank(r) >= ByteRank(c) {
				t.Errorf("ByteRank(%q)=%d not below ByteRank(%q)=%d", r, ByteRank(r), c, ByteRank(c))
			}
		}
	}
}

func TestSelectRareBytes(t *testing.T) {
	tests := []struct {
		name   string
		needle []byte
	}{
		{"word", []byte("example")},
		{"rare_at_end", []byte("eeeQ")},
		{"rare_at_start", []byte("Qeee")},
		{"digits", []byte("192.168")},
		{"repeated", []byte("aaaa")},
		{"two_bytes", []byte("ab")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := SelectRareBytes(tt.needle)

			if tt.needle[info.Index1] != info.Byte1 {
				t.Errorf("Byte1 %q not at Index1 %d of %q", info.Byte1, info.Index1, tt.needle)
			}
			if tt.needle[info.Index2] != info.Byte2 {
				t.Errorf("Byte2 %q not at Index2 %d of %q", info.Byte2, info.Index2, tt.needle)
			}
			if ByteRank(info.Byte1) > ByteRank(info.Byte2) {
				t.Errorf("Byte1 %q rank %d above Byte2 %q rank %d",
					info.Byte1, ByteRank(info.Byte1), info.Byte2, ByteRank(info.Byte2))
			}
			if len(tt.needle) >= 2 && info.Index1 == info.Index2 {
				t.Errorf("indices coincide at %d for %q", info.Index1, tt.needle)
			}

			// Byte1 must be a minimum over the whole needle.
			for _, b := range tt.needle {
				if ByteRank(b) < ByteRank(info.Byte1) {
					t.Errorf("missed rarer byte %q in %q", b, tt.needle)
				}
			}
		})
	}
}

func TestSelectRareBytesDegenerate(t *testing.T) {
	if info := SelectRareBytes(nil); info != (RareByteInfo{}) {
		t.Errorf("empty needle: got %+v", info)
	}
	info := SelectRareBytes([]byte{'x'})
	if info.Byte1 != 'x' || info.Byte2 != 'x' || info.Index1 != 0 || info.Index2 != 0 {
		t.Errorf("one-byte needle: got %+v", info)
	}
}
