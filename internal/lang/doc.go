// Package lang provides the language facts consumed by identifier name
// generators: the identifier grammar of a target language and its set of
// reserved words.
//
// A Language is immutable once built. Extra reserved names (for example the
// globals a host page defines) are merged with WithReserved, which returns a
// new Language and leaves the built-in one untouched, so a single Language
// value can be shared by every generator of a session.
//
// Supported languages:
//   - javascript: ECMAScript keywords, future reserved words, strict mode
//     restrictions and the common host globals.
//   - go: Go keywords and predeclared identifiers.
package lang
