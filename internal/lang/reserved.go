package lang

import "sort"

// ReservedSet is an immutable set of words that must never be issued as identifiers.
// The zero value is an empty set.
type ReservedSet struct {
	words map[string]struct{}
}

// NewReservedSet creates a set holding the given words.
func NewReservedSet(words ...string) ReservedSet {
	s := ReservedSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}

		s.words[w] = struct{}{}
	}

	return s
}

// Contains reports whether word is reserved.
func (s ReservedSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of reserved words.
func (s ReservedSet) Len() int {
	return len(s.words)
}

// Union returns a new set holding the words of s and extra.
// s itself is not modified.
func (s ReservedSet) Union(extra ...string) ReservedSet {
	merged := ReservedSet{words: make(map[string]struct{}, len(s.words)+len(extra))}
	for w := range s.words {
		merged.words[w] = struct{}{}
	}

	for _, w := range extra {
		if w == "" {
			continue
		}

		merged.words[w] = struct{}{}
	}

	return merged
}

// Words returns the reserved words in sorted order.
func (s ReservedSet) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}

	sort.Strings(out)

	return out
}
