package namegen

import (
	"strconv"
	"sync"

	"identgen/internal/lang"
)

// Hexadecimal issues a fixed prefix followed by a strictly increasing counter
// in lowercase hexadecimal. Names never repeat because the counter never does,
// so no issued set is kept.
type Hexadecimal struct {
	mu      sync.Mutex
	prefix  string
	counter uint64
	excl    exclusions
}

// NewHexadecimal creates a Hexadecimal generator. The first name uses base+1.
// The prefix must itself be a valid identifier of language, which keeps every
// name valid whatever digits follow.
func NewHexadecimal(language *lang.Language, prefix string, base uint64) (*Hexadecimal, error) {
	excl := newExclusions(language)
	if !excl.language.Grammar.Valid(prefix) {
		return nil, ErrInvalidPrefix
	}

	return &Hexadecimal{
		prefix:  prefix,
		counter: base,
		excl:    excl,
	}, nil
}

// Next returns the next prefixed hexadecimal name.
func (h *Hexadecimal) Next() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	for {
		h.counter++

		name := h.prefix + strconv.FormatUint(h.counter, 16)
		if !h.excl.excluded(name) {
			return name
		}
	}
}

// Preserve marks name as taken.
func (h *Hexadecimal) Preserve(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.excl.preserve(name)
}

// IsValid reports whether name is a valid, non-reserved identifier.
func (h *Hexadecimal) IsValid(name string) bool {
	return h.excl.valid(name)
}

// Prefix returns the fixed name prefix.
func (h *Hexadecimal) Prefix() string {
	return h.prefix
}

func newHexadecimalFactory(o *Options) (Generator, error) {
	return NewHexadecimal(o.Language, o.HexPrefix, o.HexBase)
}
