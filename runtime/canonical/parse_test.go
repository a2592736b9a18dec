package canonical_test

import (
	"testing"

	"github.com/cgt-lang/cgt/core/cgterrors"
	"github.com/cgt-lang/cgt/core/numeric"
	"github.com/cgt-lang/cgt/runtime/canonical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClosedForms(t *testing.T) {
	s := canonical.NewStore()

	tests := []struct {
		in   string
		want *canonical.Form
	}{
		{"0", s.Zero()},
		{"-7", s.Integer(-7)},
		{"1/2", s.Dyadic(1, 1)},
		{"-3/4", s.Dyadic(-3, 2)},
		{"*", s.Star()},
		{"*2", s.Nimber(2)},
		{"↑", s.Up()},
		{"^", s.Up()},
		{"↓", s.Negate(s.Up())},
		{"v", s.Negate(s.Up())},
		{"↑*", s.FromNus(canonical.NewNus(numeric.Integer(0), 1, 1))},
		{"2*", s.FromNus(canonical.NewNus(numeric.Integer(2), 0, 1))},
		{"1/2↑2*3", s.FromNus(canonical.NewNus(dy(1, 1), 2, 3))},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := s.Parse(tt.in)
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestParseBraces(t *testing.T) {
	s := canonical.NewStore()

	g, err := s.Parse("{1|-1}")
	require.NoError(t, err)
	assert.Equal(t, "{1|-1}", g.String())

	// Parsing canonicalizes: {0|0} is *.
	star, err := s.Parse("{0|0}")
	require.NoError(t, err)
	assert.Same(t, s.Star(), star)

	zero, err := s.Parse("{|}")
	require.NoError(t, err)
	assert.Same(t, s.Zero(), zero)

	nested, err := s.Parse("{ {1|-1} , 2 | 0 }")
	require.NoError(t, err)
	assert.NotNil(t, nested)

	up, err := s.Parse("{0|*}")
	require.NoError(t, err)
	assert.Same(t, s.Up(), up)
}

func TestParseErrors(t *testing.T) {
	s := canonical.NewStore()

	for _, in := range []string{
		"",
		"{1|",
		"{1;2|0}",
		"1/3",
		"abc",
		"1 2",
	} {
		_, err := s.Parse(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, cgterrors.Parse, "input %q", in)
	}
}

func TestPrintParseRoundTrip(t *testing.T) {
	s := canonical.NewStore()

	for _, g := range testValues(s) {
		printed := g.String()
		back, err := s.Parse(printed)
		require.NoError(t, err, printed)
		assert.Same(t, g, back, "round-trip of %q", printed)
	}
}
