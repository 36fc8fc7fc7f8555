package namegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Policy
		ok       bool
	}{
		{"dictionary", PolicyDictionary, true},
		{"Dictionary", PolicyDictionary, true},
		{"dictionaryIdentifierNamesGenerator", PolicyDictionary, true},
		{"hexadecimal", PolicyHexadecimal, true},
		{"hex", PolicyHexadecimal, true},
		{"hexadecimalIdentifierNamesGenerator", PolicyHexadecimal, true},
		{" mangled ", PolicyMangled, true},
		{"mangledIdentifierNamesGenerator", PolicyMangled, true},
		{"", 0, false},
		{"random", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			p, ok := ParsePolicy(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestPolicyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dictionary", PolicyDictionary.String())
	assert.Equal(t, "hexadecimal", PolicyHexadecimal.String())
	assert.Equal(t, "mangled", PolicyMangled.String())
	assert.Equal(t, "Policy(0)", Policy(0).String())
	assert.Equal(t, "Policy(42)", Policy(42).String())
}

func TestPolicyIsKnown(t *testing.T) {
	t.Parallel()

	for _, p := range Policies() {
		assert.True(t, p.IsKnown(), p.String())

		parsed, ok := ParsePolicy(p.String())
		assert.True(t, ok)
		assert.Equal(t, p, parsed)
	}

	assert.False(t, Policy(0).IsKnown())
	assert.False(t, Policy(-1).IsKnown())
	assert.Equal(t, PolicyHexadecimal, DefaultPolicy)
}
