package bytescan

import (
	"fmt"
	"testing"
)

// memchrPairRef is the brute-force reference for MemchrPair.
func memchrPairRef(haystack []byte, byte1, byte2 byte, offset int) int {
	if offset < 0 {
		return -1
	}
	for i := 0; i+offset < len(haystack); i++ {
		if haystack[i] == byte1 && haystack[i+offset] == byte2 {
			return i
		}
	}
	return -1
}

func TestMemchrPairBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		byte1    byte
		byte2    byte
		offset   int
	}{
		{"adjacent", []byte("hello example world"), 'e', 'x', 1},
		{"wide", []byte("contact@test.com for info"), '@', 'c', 5},
		{"no_match", []byte("hello world"), 'h', 'h', 3},
		{"negative_offset", []byte("hello"), 'h', 'e', -1},
		{"offset_zero_same", []byte("hello"), 'l', 'l', 0},
		{"offset_zero_differ", []byte("hello"), 'h', 'e', 0},
		{"offset_past_end", []byte("hi"), 'h', 'i', 5},
		{"first_byte_everywhere", []byte("aaaaab"), 'a', 'b', 1},
		{"match_at_end", []byte("xxxxxxxxxxxxxxxxab"), 'a', 'b', 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MemchrPair(tt.haystack, tt.byte1, tt.byte2, tt.offset)
			want := memchrPairRef(tt.haystack, tt.byte1, tt.byte2, tt.offset)
			if got != want {
				t.Errorf("MemchrPair(%q, %q, %q, %d) = %d, want %d",
					tt.haystack, tt.byte1, tt.byte2, tt.offset, got, want)
			}
		})
	}
}

func TestMemchrPairSweep(t *testing.T) {
	// A repeating pattern gives pair hits at predictable strides; sweep
	// offsets across the SWAR chunk width.
	haystack := make([]byte, 300)
	for i := range haystack {
		haystack[i] = byte('a' + i%7)
	}

	for offset := 0; offset <= 20; offset++ {
		for _, b2 := range []byte{'a', 'c', 'g', 'z'} {
			got := MemchrPair(haystack, 'b', b2, offset)
			want := memchrPairRef(haystack, 'b', b2, offset)
			if got != want {
				t.Errorf("offset %d, byte2 %q: got %d, want %d", offset, b2, got, want)
			}
		}
	}
}

func FuzzMemchrPair(f *testing.F) {
	f.Add([]byte("hello example world"), byte('e'), byte('x'), 1)
	f.Add([]byte(""), byte('a'), byte('b'), 0)
	f.Add(make([]byte, 64), byte(0), byte(0), 9)

	f.Fuzz(func(t *testing.T, haystack []byte, byte1, byte2 byte, offset int) {
		if offset > len(haystack) {
			offset %= len(haystack) + 1
		}
		got := MemchrPair(haystack, byte1, byte2, offset)
		want := memchrPairRef(haystack, byte1, byte2, offset)
		if got != want {
			t.Errorf("MemchrPair(%v, %v, %v, %d) = %d, want %d",
				haystack, byte1, byte2, offset, got, want)
		}
	})
}

func BenchmarkMemchrPair(b *testing.B) {
	for _, size := range []int{1024, 65536} {
		haystack := make([]byte, size)
		for i := range haystack {
			haystack[i] = byte('a' + i%16)
		}
		haystack[size-2] = 'Y'
		haystack[size-1] = 'Z'

		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				_ = MemchrPair(haystack, 'Y', 'Z', 1)
			}
		})
	}
}
