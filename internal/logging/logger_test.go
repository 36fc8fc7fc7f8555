package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := New(WithOutput(&buf), WithLevel(slog.LevelDebug), WithAttr(slog.String("component", "namegen")))
	log.Debug("resolved", slog.String("policy", "mangled"))

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=resolved")
	assert.Contains(t, buf.String(), "component=namegen")
	assert.Contains(t, buf.String(), "policy=mangled")
}

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := New(WithOutput(&buf), WithFormat(FormatJSON))
	log.Debug("hidden")
	log.Warn("visible", slog.Int("count", 3))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "WARN", record["level"])
	assert.InDelta(t, 3, record["count"], 0)
}

func TestWithFormatIgnoresUnknown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := New(WithOutput(&buf), WithFormat("xml"), WithOutput(nil))
	log.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			l, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, l)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	require.Error(t, err)
}
