package bytescan

import (
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"
)

// PatternSet finds the first occurrence of any pattern from a fixed set.
//
// Compilation picks the cheapest strategy for the set:
//   - a single pattern runs through Memmem;
//   - up to three single-byte patterns run through Memchr/Memchr2/Memchr3;
//   - anything larger compiles to an Aho-Corasick automaton, whose O(n)
//     multi-pattern scan beats repeated byte search once the set grows.
//
// A PatternSet is immutable after NewPatternSet and safe for concurrent use.
type PatternSet struct {
	// Exactly one of the three strategies is set.
	needle []byte // single pattern
	bytes  []byte // 1-3 single-byte patterns
	auto   *ahocorasick.Automaton
}

// ErrEmptyPatternSet is returned when no patterns are supplied.
var ErrEmptyPatternSet = errors.New("bytescan: pattern set requires at least one pattern")

// NewPatternSet compiles patterns into a PatternSet. Patterns must be
// non-empty; an empty pattern would match everywhere and is rejected.
func NewPatternSet(patterns [][]byte) (*PatternSet, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyPatternSet
	}
	for i, p := range patterns {
		if len(p) == 0 {
			return nil, fmt.Errorf("bytescan: pattern %d is empty", i)
		}
	}

	if len(patterns) == 1 {
		needle := make([]byte, len(patterns[0]))
		copy(needle, patterns[0])
		return &PatternSet{needle: needle}, nil
	}

	if len(patterns) <= 3 {
		single := true
		for _, p := range patterns {
			if len(p) != 1 {
				single = false
				break
			}
		}
		if single {
			set := make([]byte, 0, len(patterns))
			for _, p := range patterns {
				set = append(set, p[0])
			}
			return &PatternSet{bytes: set}, nil
		}
	}

	builder := ahocorasick.NewBuilder()
	for _, p := range patterns {
		builder.AddPattern(p)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("bytescan: compiling pattern set: %w", err)
	}
	return &PatternSet{auto: auto}, nil
}

// Find returns the span [start, end) of the first pattern occurrence at or
// after position at. ok is false when no pattern occurs.
func (s *PatternSet) Find(haystack []byte, at int) (start, end int, ok bool) {
	if at < 0 || at >= len(haystack) {
		return -1, -1, false
	}

	switch {
	case s.needle != nil:
		pos := Memmem(haystack[at:], s.needle)
		if pos < 0 {
			return -1, -1, false
		}
		return at + pos, at + pos + len(s.needle), true

	case s.bytes != nil:
		var pos int
		switch len(s.bytes) {
		case 1:
			pos = Memchr(haystack[at:], s.bytes[0])
		case 2:
			pos = Memchr2(haystack[at:], s.bytes[0], s.bytes[1])
		default:
			pos = Memchr3(haystack[at:], s.bytes[0], s.bytes[1], s.bytes[2])
		}
		if pos < 0 {
			return -1, -1, false
		}
		return at + pos, at + pos + 1, true

	default:
		m := s.auto.Find(haystack, at)
		if m == nil {
			return -1, -1, false
		}
		return m.Start, m.End, true
	}
}

// IsMatch reports whether any pattern occurs in haystack.
func (s *PatternSet) IsMatch(haystack []byte) bool {
	if s.auto != nil {
		return s.auto.IsMatch(haystack)
	}
	_, _, ok := s.Find(haystack, 0)
	return ok
}
