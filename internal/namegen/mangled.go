package namegen

import (
	"strings"
	"sync"

	"identgen/internal/lang"
)

// Mangled issues the shortest names first: every one-character name, then
// every two-character name, and so on. The cursor is a mixed-radix counter
// whose first digit indexes the start alphabet and whose remaining digits
// index the continue alphabet.
type Mangled struct {
	mu     sync.Mutex
	start  []rune
	cont   []rune
	cursor []int
	excl   exclusions
}

// NewMangled creates a Mangled generator over the alphabets of language.
func NewMangled(language *lang.Language) *Mangled {
	excl := newExclusions(language)

	return &Mangled{
		start:  []rune(excl.language.Grammar.Start),
		cont:   []rune(excl.language.Grammar.Continue),
		cursor: []int{0},
		excl:   excl,
	}
}

// Next returns the next name in shortest-first order, skipping reserved and
// preserved candidates.
func (m *Mangled) Next() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		name := m.render()
		m.advance()

		if !m.excl.excluded(name) {
			return name
		}
	}
}

// Preserve marks name as taken.
func (m *Mangled) Preserve(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.excl.preserve(name)
}

// IsValid reports whether name is a valid, non-reserved identifier.
func (m *Mangled) IsValid(name string) bool {
	return m.excl.valid(name)
}

func (m *Mangled) render() string {
	var b strings.Builder

	b.Grow(len(m.cursor))

	for i, d := range m.cursor {
		if i == 0 {
			b.WriteRune(m.start[d])
			continue
		}

		b.WriteRune(m.cont[d])
	}

	return b.String()
}

// advance increments the cursor like an odometer. When the first digit
// overflows every digit is already zero, so growing by one digit yields the
// first name of the next length.
func (m *Mangled) advance() {
	for i := len(m.cursor) - 1; i >= 0; i-- {
		limit := len(m.cont)
		if i == 0 {
			limit = len(m.start)
		}

		m.cursor[i]++
		if m.cursor[i] < limit {
			return
		}

		m.cursor[i] = 0
	}

	m.cursor = append(m.cursor, 0)
}

func newMangledFactory(o *Options) (Generator, error) {
	return NewMangled(o.Language), nil
}
