// Package match ranks known names by edit distance so that configuration
// errors can suggest what the user probably meant ("mangle" -> "mangled").
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Similarity: normalized, case-insensitive similarity in [0, 1]
//   - Suggest: candidates above a similarity threshold, best first
package match
