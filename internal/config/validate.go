package config

import (
	"fmt"

	"identgen/internal/diagnostic"
	"identgen/internal/lang"
	"identgen/internal/match"
	"identgen/internal/namegen"
)

// suggestionScore is the minimum similarity for a known name to be offered
// as a replacement for a misspelled one.
const suggestionScore = 0.6

// Diagnostic codes reported by Validate.
const (
	CodeConfigNil        = "config_is_nil"
	CodeUnknownLanguage  = "unknown_language"
	CodeUnknownPolicy    = "unknown_policy"
	CodeEmptyDictionary  = "empty_dictionary"
	CodeInvalidWord      = "invalid_dictionary_word"
	CodeDuplicateWord    = "duplicate_dictionary_word"
	CodeDictionaryUnused = "dictionary_unused"
	CodeInvalidHexPrefix = "invalid_hex_prefix"
	CodeInvalidPreserved = "invalid_preserved_name"
)

// Validate checks f against the strategy it selects. Only the selected
// strategy is checked because a session never constructs the others.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(CodeConfigNil, "config is nil", "")
		return res
	}

	l, err := f.TargetLanguage()
	if err != nil {
		res.AddError(CodeUnknownLanguage, err.Error(), "language", suggest(f.Language, lang.Names())...)
		return res
	}

	policy, ok := namegen.ParsePolicy(f.Policy)
	if !ok {
		res.AddWarning(CodeUnknownPolicy,
			fmt.Sprintf("unknown policy %q, falling back to %s", f.Policy, namegen.DefaultPolicy),
			"policy", suggest(f.Policy, policyNames())...)

		policy = namegen.DefaultPolicy
	}

	switch policy {
	case namegen.PolicyDictionary:
		validateDictionary(res, l, f.Dictionary)
	case namegen.PolicyHexadecimal:
		validateHexadecimal(res, l, f.Hexadecimal)
	}

	if policy != namegen.PolicyDictionary && len(f.Dictionary) > 0 {
		res.AddInfo(CodeDictionaryUnused,
			fmt.Sprintf("dictionary is ignored by the %s policy", policy), "dictionary")
	}

	for _, name := range f.Preserved {
		if !l.Grammar.Valid(name) {
			res.AddWarning(CodeInvalidPreserved,
				fmt.Sprintf("preserved name %q is not a valid %s identifier", name, l.Name), "preserved")
		}
	}

	return res
}

func validateDictionary(res *diagnostic.Diagnostics, l *lang.Language, words []string) {
	seen := make(map[string]struct{}, len(words))
	usable := 0

	for _, w := range words {
		if _, dup := seen[w]; dup {
			res.AddInfo(CodeDuplicateWord, fmt.Sprintf("duplicate word %q is used once", w), "dictionary")
			continue
		}

		seen[w] = struct{}{}

		if !l.Grammar.Valid(w) {
			res.AddWarning(CodeInvalidWord,
				fmt.Sprintf("word %q is not a valid %s identifier and is dropped", w, l.Name), "dictionary")

			continue
		}

		usable++
	}

	if usable == 0 {
		res.AddError(CodeEmptyDictionary, "dictionary policy needs at least one valid word", "dictionary")
	}
}

func validateHexadecimal(res *diagnostic.Diagnostics, l *lang.Language, hex Hexadecimal) {
	if !l.Grammar.Valid(hex.Prefix) {
		res.AddError(CodeInvalidHexPrefix,
			fmt.Sprintf("prefix %q is not a valid %s identifier", hex.Prefix, l.Name),
			"hexadecimal.prefix", namegen.DefaultHexPrefix)
	}
}

func policyNames() []string {
	var names []string
	for _, p := range namegen.Policies() {
		names = append(names, p.String())
	}

	return names
}

// suggest returns the known names close to input, or all of them when
// none is close enough.
func suggest(input string, known []string) []string {
	if near := match.Suggest(input, known, suggestionScore); len(near) > 0 {
		return near
	}

	return known
}
