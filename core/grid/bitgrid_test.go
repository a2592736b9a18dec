package grid_test

import (
	"testing"

	"github.com/cgt-lang/cgt/core/cgterrors"
	"github.com/cgt-lang/cgt/core/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	b, err := grid.Empty(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.False(t, b.Get(2, 1))
}

func TestEmptyTooLarge(t *testing.T) {
	_, err := grid.Empty(9, 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, cgterrors.InvalidInput)
}

func TestSetIsValueSemantics(t *testing.T) {
	b, err := grid.Empty(2, 2)
	require.NoError(t, err)

	c := b.Set(1, 0, true)
	assert.True(t, c.Get(1, 0))
	assert.False(t, b.Get(1, 0), "Set must not mutate the receiver")

	d := c.Set(1, 0, false)
	assert.False(t, d.Get(1, 0))
}

func TestParseRoundTrip(t *testing.T) {
	tests := []string{
		".",
		"..|..",
		"#.#|...",
		"##|##",
	}
	for _, s := range tests {
		b, err := grid.Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, b.String())
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"..|.", "x."} {
		_, err := grid.Parse(s)
		require.Error(t, err, s)
		assert.ErrorIs(t, err, cgterrors.InvalidInput)
	}
}
