// Package diagnostic provides structured warnings and errors collected while
// validating an identifier generation configuration.
//
// Key capabilities:
//   - Error diagnostics that abort a session (empty dictionary, bad prefix)
//   - Warnings for soft fallbacks (unknown policy, dropped dictionary words)
//   - Stable codes for programmatic matching
package diagnostic
