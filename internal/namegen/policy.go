package namegen

import "strings"

//go:generate go tool stringer -type=Policy -linecomment -output=policy_string.go

// Policy selects the strategy a Selector resolves to.
type Policy int

const (
	_ Policy = iota // zero value is outside the enum and resolves like PolicyHexadecimal

	PolicyDictionary  // dictionary
	PolicyHexadecimal // hexadecimal
	PolicyMangled     // mangled
)

// DefaultPolicy is used for any value outside the enum.
const DefaultPolicy = PolicyHexadecimal

var policyNames = map[string]Policy{
	"dictionary":                          PolicyDictionary,
	"dictionaryidentifiernamesgenerator":  PolicyDictionary,
	"hexadecimal":                         PolicyHexadecimal,
	"hex":                                 PolicyHexadecimal,
	"hexadecimalidentifiernamesgenerator": PolicyHexadecimal,
	"mangled":                             PolicyMangled,
	"mangledidentifiernamesgenerator":     PolicyMangled,
}

// ParsePolicy parses a policy name (case-insensitive). Besides the short
// names it accepts the long "<name>IdentifierNamesGenerator" forms.
// The second result is false for unknown names; the returned Policy is then
// the zero value, which a Selector treats as DefaultPolicy.
func ParsePolicy(s string) (Policy, bool) {
	p, ok := policyNames[strings.ToLower(strings.TrimSpace(s))]
	return p, ok
}

// IsKnown reports whether p is one of the declared policies.
func (p Policy) IsKnown() bool {
	switch p {
	case PolicyDictionary, PolicyHexadecimal, PolicyMangled:
		return true
	default:
		return false
	}
}

// Policies returns the declared policies in declaration order.
func Policies() []Policy {
	return []Policy{PolicyDictionary, PolicyHexadecimal, PolicyMangled}
}
