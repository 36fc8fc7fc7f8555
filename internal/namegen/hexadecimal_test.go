package namegen

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identgen/internal/lang"
)

func TestHexadecimalSequence(t *testing.T) {
	t.Parallel()

	h, err := NewHexadecimal(lang.JavaScript(), DefaultHexPrefix, DefaultHexBase)
	require.NoError(t, err)

	names := take(h, 17)
	assert.Equal(t, "_0x1", names[0])
	assert.Equal(t, "_0x2", names[1])
	assert.Equal(t, "_0x9", names[8])
	assert.Equal(t, "_0xa", names[9])
	assert.Equal(t, "_0xf", names[14])
	assert.Equal(t, "_0x10", names[15])
	assert.Equal(t, "_0x11", names[16])
}

func TestHexadecimalBase(t *testing.T) {
	t.Parallel()

	h, err := NewHexadecimal(lang.Go(), "v", 0xfe)
	require.NoError(t, err)

	assert.Equal(t, []string{"vff", "v100"}, take(h, 2))
	assert.Equal(t, "v", h.Prefix())
}

func TestHexadecimalMonotonic(t *testing.T) {
	t.Parallel()

	h, err := NewHexadecimal(lang.JavaScript(), DefaultHexPrefix, DefaultHexBase)
	require.NoError(t, err)

	var prev uint64

	for i, name := range take(h, 5000) {
		require.True(t, strings.HasPrefix(name, DefaultHexPrefix), name)

		n, err := strconv.ParseUint(strings.TrimPrefix(name, DefaultHexPrefix), 16, 64)
		require.NoError(t, err)

		if i > 0 {
			require.Greater(t, n, prev, "counter must strictly increase at %d", i)
		}

		prev = n
	}
}

func TestHexadecimalSkipsExcluded(t *testing.T) {
	t.Parallel()

	// A short prefix lets the counter spell reserved or preserved names.
	l := lang.JavaScript().WithReserved("x2")

	h, err := NewHexadecimal(l, "x", 0)
	require.NoError(t, err)

	h.Preserve("x3")

	assert.Equal(t, []string{"x1", "x4", "x5"}, take(h, 3))
}

func TestHexadecimalInvalidPrefix(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{"", "0x", "-", "a-"} {
		t.Run(prefix, func(t *testing.T) {
			t.Parallel()

			h, err := NewHexadecimal(lang.JavaScript(), prefix, 0)
			require.ErrorIs(t, err, ErrInvalidPrefix)
			assert.Nil(t, h)
		})
	}

	_, err := NewHexadecimal(lang.Go(), "$", 0)
	require.ErrorIs(t, err, ErrInvalidPrefix, "$ is not a Go identifier")
}
