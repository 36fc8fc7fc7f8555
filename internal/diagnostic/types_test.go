package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsError(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	require.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("unknown_policy", `unknown policy "fancy"`, "policy", "mangled")
	assert.True(t, d.IsValid(), "warnings must not invalidate")

	d.AddError("empty_dictionary", "dictionary is empty", "dictionary")
	d.AddError("invalid_hex_prefix", `prefix "0x" is not a valid identifier`, "hexadecimal.prefix")

	assert.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(),
		`dictionary: [empty_dictionary] dictionary is empty; `+
			`hexadecimal.prefix: [invalid_hex_prefix] prefix "0x" is not a valid identifier`)
	assert.Equal(t, []string{"empty_dictionary", "invalid_hex_prefix", "unknown_policy"}, d.Codes())
}

func TestDiagnosticString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{"message only", Diagnostic{Message: "hello"}, "hello"},
		{"with code", Diagnostic{Code: "c", Message: "hello"}, "[c] hello"},
		{"with field", Diagnostic{Code: "c", Message: "hello", Field: "policy"}, "policy: [c] hello"},
		{
			"with suggestions",
			Diagnostic{Code: "c", Message: "hello", Suggestions: []string{"a", "b"}},
			"[c] hello (try: a, b)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	var a, b Diagnostics
	a.AddInfo("i", "info", "")
	b.AddError("e", "error", "")
	b.AddWarning("w", "warning", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
