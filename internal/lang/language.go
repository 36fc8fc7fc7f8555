package lang

import (
	"errors"
	"fmt"
	"go/types"
	"sort"
	"strings"
)

// ErrUnknownLanguage is returned by Lookup for an unsupported language name.
var ErrUnknownLanguage = errors.New("unknown language")

// Language names accepted by Lookup.
const (
	NameJavaScript = "javascript"
	NameGo         = "go"
)

// Language bundles the identifier grammar and the reserved words of a target language.
type Language struct {
	Name     string
	Grammar  Grammar
	Reserved ReservedSet
}

// Allowed reports whether name is a grammatically valid identifier that is not reserved.
func (l *Language) Allowed(name string) bool {
	return l.Grammar.Valid(name) && !l.Reserved.Contains(name)
}

// WithReserved returns a copy of l whose reserved set also holds extra.
func (l *Language) WithReserved(extra ...string) *Language {
	if len(extra) == 0 {
		return l
	}

	return &Language{
		Name:     l.Name,
		Grammar:  l.Grammar,
		Reserved: l.Reserved.Union(extra...),
	}
}

var (
	javaScript = &Language{
		Name:     NameJavaScript,
		Grammar:  javaScriptGrammar(),
		Reserved: NewReservedSet(javaScriptReserved...),
	}
	golang = &Language{
		Name:     NameGo,
		Grammar:  goGrammar(),
		Reserved: NewReservedSet(append(goKeywords, types.Universe.Names()...)...),
	}

	languages = map[string]*Language{
		NameJavaScript: javaScript,
		"js":           javaScript,
		"ecmascript":   javaScript,
		NameGo:         golang,
		"golang":       golang,
	}
)

// JavaScript returns the built-in JavaScript language facts.
func JavaScript() *Language { return javaScript }

// Go returns the built-in Go language facts.
func Go() *Language { return golang }

// Lookup returns the built-in language registered under name (case-insensitive).
func Lookup(name string) (*Language, error) {
	l, ok := languages[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (supported: %s)", ErrUnknownLanguage, name, strings.Join(Names(), ", "))
	}

	return l, nil
}

// Names returns the canonical names of the built-in languages.
func Names() []string {
	names := []string{NameJavaScript, NameGo}
	sort.Strings(names)

	return names
}
