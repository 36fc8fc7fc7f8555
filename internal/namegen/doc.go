// Package namegen produces fresh identifier names for source-to-source
// rewriting (obfuscation, minification).
//
// Three strategies implement the Generator capability:
//
//   - Dictionary: words from a configured list, suffixed with the pass number
//     once the list has been used up ("alpha", "beta", "alpha1", "beta1", ...).
//   - Hexadecimal: a fixed prefix followed by an increasing hexadecimal
//     counter ("_0x1", "_0x2", ...). This is the default.
//   - Mangled: the shortest names first, enumerating one-character names,
//     then two-character names, and so on ("a", "b", ..., "Z", "aa", "ab", ...).
//
// Every strategy skips the reserved words of its language and any name
// registered with Preserve, and never returns the same name twice.
//
// Callers obtain a generator from a Selector, created once per rewriting
// session. The first successful Resolve call decides the strategy; every later
// call returns the same generator whatever policy it passes:
//
//	sel := namegen.NewSelector(namegen.WithLanguage(lang.JavaScript()))
//	gen, err := sel.Resolve(namegen.PolicyMangled)
//	if err != nil {
//		return err
//	}
//	name := gen.Next()
//
// Selectors and generators are safe for concurrent use.
package namegen
