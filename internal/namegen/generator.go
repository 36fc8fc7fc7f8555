package namegen

import (
	"errors"
	"fmt"

	"identgen/internal/lang"
)

// Generator hands out fresh identifier names.
type Generator interface {
	// Next returns a name never returned before by this generator. The name is
	// a valid identifier of the generator's language, is not reserved and was
	// not registered with Preserve.
	Next() string
	// Preserve marks name as taken, typically because it already occurs in the
	// source being rewritten. Later calls to Next never return it.
	Preserve(name string)
	// IsValid reports whether name is a grammatically valid, non-reserved
	// identifier of the generator's language.
	IsValid(name string) bool
}

// Configuration errors returned when a strategy cannot be constructed.
var (
	ErrEmptyDictionary = errors.New("dictionary has no usable words")
	ErrInvalidPrefix   = errors.New("prefix is not a valid identifier start")
)

// ConfigError reports that the strategy selected by Policy is misconfigured.
// A session that receives one must be aborted.
type ConfigError struct {
	Policy Policy
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s generator: %v", e.Policy, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// exclusions tracks the names a strategy must skip: the reserved words of its
// language and the names registered with Preserve.
type exclusions struct {
	language  *lang.Language
	preserved map[string]struct{}
}

func newExclusions(language *lang.Language) exclusions {
	if language == nil {
		language = lang.JavaScript()
	}

	return exclusions{
		language:  language,
		preserved: make(map[string]struct{}),
	}
}

func (e *exclusions) excluded(name string) bool {
	if e.language.Reserved.Contains(name) {
		return true
	}

	_, ok := e.preserved[name]

	return ok
}

func (e *exclusions) preserve(name string) {
	if name == "" {
		return
	}

	e.preserved[name] = struct{}{}
}

func (e *exclusions) valid(name string) bool {
	return e.language.Allowed(name)
}
