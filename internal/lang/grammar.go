package lang

import (
	"unicode"
	"unicode/utf8"
)

// Alphabets used by enumerating generators. Both are ASCII so that every
// generated name is also portable across source encodings.
const (
	asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	asciiDigits  = "0123456789"
)

// Grammar describes the identifier rule of a language.
type Grammar struct {
	// Start is the ordered alphabet used for the first character of enumerated names.
	Start string
	// Continue is the ordered alphabet used for every following character.
	Continue string

	isStart    func(r rune) bool
	isContinue func(r rune) bool
}

// Valid reports whether name matches the identifier grammar.
// It does not consult reserved words.
func (g Grammar) Valid(name string) bool {
	if name == "" || !utf8.ValidString(name) {
		return false
	}

	for i, r := range name {
		if i == 0 {
			if !g.isStart(r) {
				return false
			}

			continue
		}

		if !g.isContinue(r) {
			return false
		}
	}

	return true
}

// ValidStart reports whether r may begin an identifier.
func (g Grammar) ValidStart(r rune) bool {
	return g.isStart(r)
}

// ValidContinue reports whether r may follow the first character of an identifier.
func (g Grammar) ValidContinue(r rune) bool {
	return g.isContinue(r)
}

const (
	zwnj = '\u200c'
	zwj  = '\u200d'
)

// javaScriptGrammar follows the ECMAScript IdentifierName production.
func javaScriptGrammar() Grammar {
	isStart := func(r rune) bool {
		return r == '$' || r == '_' ||
			unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start)
	}

	return Grammar{
		Start:    asciiLetters,
		Continue: asciiLetters + asciiDigits,
		isStart:  isStart,
		isContinue: func(r rune) bool {
			return isStart(r) || r == zwnj || r == zwj ||
				unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
		},
	}
}

// goGrammar follows the Go identifier production: letter { letter | unicode_digit }.
func goGrammar() Grammar {
	isStart := func(r rune) bool {
		return r == '_' || unicode.IsLetter(r)
	}

	return Grammar{
		Start:    asciiLetters,
		Continue: asciiLetters + asciiDigits,
		isStart:  isStart,
		isContinue: func(r rune) bool {
			return isStart(r) || unicode.IsDigit(r)
		},
	}
}
