package namegen

import (
	"strconv"
	"sync"

	"identgen/internal/common"
	"identgen/internal/lang"
)

// Dictionary issues words from an ordered list. Every full pass over the list
// after the first appends the pass number to the words, so "alpha" becomes
// "alpha1" on the second pass and "alpha2" on the third.
type Dictionary struct {
	mu     sync.Mutex
	words  []string
	cursor int
	pass   int
	issued map[string]struct{}
	excl   exclusions
}

// NewDictionary creates a Dictionary over words. Duplicates and words that are
// not valid identifiers of language are dropped; ErrEmptyDictionary is
// returned when nothing usable remains.
func NewDictionary(language *lang.Language, words []string) (*Dictionary, error) {
	excl := newExclusions(language)

	usable := common.Filter(common.Unique(words), excl.language.Grammar.Valid)
	if common.IsEmpty(usable) {
		return nil, ErrEmptyDictionary
	}

	return &Dictionary{
		words:  usable,
		issued: make(map[string]struct{}),
		excl:   excl,
	}, nil
}

// Next returns the next dictionary word, skipping reserved, preserved and
// already issued candidates.
func (d *Dictionary) Next() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	for {
		candidate := d.words[d.cursor]
		if d.pass > 0 {
			candidate += strconv.Itoa(d.pass)
		}

		d.cursor++
		if d.cursor == len(d.words) {
			d.cursor = 0
			d.pass++
		}

		if d.excl.excluded(candidate) {
			continue
		}

		if _, ok := d.issued[candidate]; ok {
			continue
		}

		d.issued[candidate] = struct{}{}

		return candidate
	}
}

// Preserve marks name as taken.
func (d *Dictionary) Preserve(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.excl.preserve(name)
}

// IsValid reports whether name is a valid, non-reserved identifier.
func (d *Dictionary) IsValid(name string) bool {
	return d.excl.valid(name)
}

// Words returns the usable word list.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

func newDictionaryFactory(o *Options) (Generator, error) {
	return NewDictionary(o.Language, o.Dictionary)
}
