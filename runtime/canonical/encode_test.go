package canonical_test

import (
	"testing"

	"github.com/cgt-lang/cgt/core/cgterrors"
	"github.com/cgt-lang/cgt/runtime/canonical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := canonical.NewStore()

	for _, g := range testValues(s) {
		data, err := canonical.Encode(g)
		require.NoError(t, err, g.String())

		back, err := s.Decode(data)
		require.NoError(t, err, g.String())
		assert.Same(t, g, back, "round-trip of %v", g)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	s := canonical.NewStore()
	sw := s.FromMoves(canonical.Moves{
		Left:  []*canonical.Form{s.Integer(1)},
		Right: []*canonical.Form{s.Integer(-1)},
	})

	a, err := canonical.Encode(sw)
	require.NoError(t, err)
	b, err := canonical.Encode(sw)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// A fresh store building the same value serializes identically.
	s2 := canonical.NewStore()
	sw2 := s2.FromMoves(canonical.Moves{
		Left:  []*canonical.Form{s2.Integer(1)},
		Right: []*canonical.Form{s2.Integer(-1)},
	})
	c, err := canonical.Encode(sw2)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestDecodeIntoFreshStore(t *testing.T) {
	s := canonical.NewStore()
	up := s.Up()
	data, err := canonical.Encode(up)
	require.NoError(t, err)

	s2 := canonical.NewStore()
	back, err := s2.Decode(data)
	require.NoError(t, err)
	assert.Same(t, s2.Up(), back)
	assert.Equal(t, "↑", back.String())
}

func TestDecodeErrors(t *testing.T) {
	s := canonical.NewStore()

	_, err := s.Decode([]byte{0xff, 0x00})
	require.Error(t, err)
	assert.ErrorIs(t, err, cgterrors.Parse)
}
