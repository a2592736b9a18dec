package canonical_test

import (
	"testing"

	"github.com/cgt-lang/cgt/core/numeric"
	"github.com/cgt-lang/cgt/runtime/canonical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moves(left, right []*canonical.Form) canonical.Moves {
	return canonical.Moves{Left: left, Right: right}
}

// The concrete end-to-end vectors from the standard tables.
func TestFromMovesClosedForms(t *testing.T) {
	s := canonical.NewStore()
	zero := s.Zero()
	star := s.Star()

	tests := []struct {
		name  string
		m     canonical.Moves
		want  *canonical.Form
		print string
	}{
		{"empty is zero", moves(nil, nil), zero, "0"},
		{"{0|0} is star", moves([]*canonical.Form{zero}, []*canonical.Form{zero}), star, "*"},
		{"{0|*} is up", moves([]*canonical.Form{zero}, []*canonical.Form{star}), s.Up(), "↑"},
		{"{0,*|0} is up star",
			moves([]*canonical.Form{zero, star}, []*canonical.Form{zero}),
			s.FromNus(canonical.NewNus(numeric.Integer(0), 1, 1)), "↑*"},
		{"{*|0} is down",
			moves([]*canonical.Form{star}, []*canonical.Form{zero}),
			s.Negate(s.Up()), "↓"},
		{"{-1|1} is zero by simplicity",
			moves([]*canonical.Form{s.Integer(-1)}, []*canonical.Form{s.Integer(1)}),
			zero, "0"},
		{"{0|1} is a half",
			moves([]*canonical.Form{zero}, []*canonical.Form{s.Integer(1)}),
			s.Dyadic(1, 1), "1/2"},
		{"{0|} is one", moves([]*canonical.Form{zero}, nil), s.Integer(1), "1"},
		{"{|0} is minus one", moves(nil, []*canonical.Form{zero}), s.Integer(-1), "-1"},
		{"{3|5} is four",
			moves([]*canonical.Form{s.Integer(3)}, []*canonical.Form{s.Integer(5)}),
			s.Integer(4), "4"},
		{"{2|2} is two star",
			moves([]*canonical.Form{s.Integer(2)}, []*canonical.Form{s.Integer(2)}),
			s.FromNus(canonical.NewNus(numeric.Integer(2), 0, 1)), "2*"},
		{"{0,*|0,*} is star two",
			moves([]*canonical.Form{zero, star}, []*canonical.Form{zero, star}),
			s.Nimber(2), "*2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.FromMoves(tt.m)
			assert.Same(t, tt.want, got)
			assert.Equal(t, tt.print, got.String())
		})
	}
}

func TestFromMovesSwitch(t *testing.T) {
	s := canonical.NewStore()

	g := s.FromMoves(moves(
		[]*canonical.Form{s.Integer(1)},
		[]*canonical.Form{s.Integer(-1)},
	))
	_, isNus := g.ToNus()
	assert.False(t, isNus, "a switch has no closed form")
	assert.Equal(t, "{1|-1}", g.String())

	// The switch is confused with zero but bounded by its options.
	assert.False(t, s.Leq(g, s.Zero()))
	assert.False(t, s.Geq(g, s.Zero()))
	assert.True(t, s.Leq(g, s.Integer(2)))
	assert.True(t, s.Geq(g, s.Integer(-2)))
}

func TestDominatedOptionsEliminated(t *testing.T) {
	s := canonical.NewStore()

	// For Left, 3 dominates both 0 and -1; for Right, 5 dominates 7.
	g := s.FromMoves(moves(
		[]*canonical.Form{s.Integer(0), s.Integer(-1), s.Integer(3)},
		[]*canonical.Form{s.Integer(7), s.Integer(5)},
	))
	assert.Same(t, s.Integer(4), g, "{3|5} after domination, then simplicity")
}

func TestReversibleOptionsBypassed(t *testing.T) {
	s := canonical.NewStore()
	zero := s.Zero()
	star := s.Star()

	// In {0,*2|0}, Left's option *2 is reversible: Right's response *
	// satisfies * <= G, so *2 is replaced by the left options of *,
	// leaving {0|0} = *.
	g := s.FromMoves(moves(
		[]*canonical.Form{zero, s.Nimber(2)},
		[]*canonical.Form{zero},
	))
	assert.Same(t, star, g)

	// {*2|*2} is a second-player win: the nimber options reverse through
	// 0 on both sides.
	h := s.FromMoves(moves(
		[]*canonical.Form{s.Nimber(2)},
		[]*canonical.Form{s.Nimber(2)},
	))
	assert.Same(t, zero, h)

	// {*|*} collapses the same way.
	assert.Same(t, zero, s.FromMoves(moves(
		[]*canonical.Form{star}, []*canonical.Form{star},
	)))
}

func TestCanonicalUniqueness(t *testing.T) {
	s := canonical.NewStore()

	// Two constructions of the same value yield the same handle.
	a := s.FromMoves(moves(
		[]*canonical.Form{s.Zero()},
		[]*canonical.Form{s.Integer(2)},
	))
	b := s.Integer(1)
	assert.Same(t, b, a, "{0|2} simplifies to 1")

	// Unsorted, duplicated input does not change the result.
	c := s.FromMoves(moves(
		[]*canonical.Form{s.Integer(1), s.Integer(1), s.Integer(-1)},
		[]*canonical.Form{s.Integer(1)},
	))
	d := s.FromMoves(moves(
		[]*canonical.Form{s.Integer(-1), s.Integer(1)},
		[]*canonical.Form{s.Integer(1)},
	))
	assert.Same(t, c, d)
}

func TestDeepCanonicalization(t *testing.T) {
	s := canonical.NewStore()

	// The switch {1|-1} is its own negative, so its double vanishes.
	sw := s.FromMoves(moves(
		[]*canonical.Form{s.Integer(1)},
		[]*canonical.Form{s.Integer(-1)},
	))
	assert.Same(t, sw, s.Negate(sw))
	assert.Same(t, s.Zero(), s.Sum(sw, sw))

	// Shifting the switch by a number keeps it switch-shaped.
	shifted := s.Sum(sw, s.Integer(1))
	assert.Equal(t, "{2|0}", shifted.String())
	assert.Same(t, sw, s.Difference(shifted, s.Integer(1)))
}

func TestBirthday(t *testing.T) {
	s := canonical.NewStore()

	assert.Equal(t, 0, s.Zero().Birthday())
	assert.Equal(t, 1, s.Integer(1).Birthday())
	assert.Equal(t, 3, s.Integer(-3).Birthday())
	assert.Equal(t, 1, s.Star().Birthday())
	assert.Equal(t, 2, s.Nimber(2).Birthday())
	assert.Equal(t, 2, s.Up().Birthday(), "up is {0|*}")
	assert.Equal(t, 2, s.Dyadic(1, 1).Birthday(), "a half is {0|1}")

	sw := s.FromMoves(moves(
		[]*canonical.Form{s.Integer(1)},
		[]*canonical.Form{s.Integer(-1)},
	))
	assert.Equal(t, 2, sw.Birthday())
}

func TestToNusRoundTrip(t *testing.T) {
	s := canonical.NewStore()

	values := []canonical.Nus{
		canonical.NusInteger(0),
		canonical.NusInteger(5),
		canonical.NusInteger(-3),
		canonical.NusNumber(dy(3, 2)),
		canonical.NusNimber(3),
		canonical.NewNus(numeric.Integer(0), 1, 0),
		canonical.NewNus(numeric.Integer(0), 1, 1),
		canonical.NewNus(numeric.Integer(0), -2, 0),
		canonical.NewNus(numeric.Integer(0), 3, 2),
		canonical.NewNus(dy(1, 1), 1, 0),
		canonical.NewNus(numeric.Integer(2), -1, 1),
	}

	for _, v := range values {
		f := s.FromNus(v)
		got, ok := f.ToNus()
		require.True(t, ok, v.String())
		assert.Equal(t, v, got)

		// Rebuilding the value from its own canonical options must give
		// back the identical handle.
		rebuilt := s.FromMoves(moves(f.LeftOptions(), f.RightOptions()))
		assert.Same(t, f, rebuilt, "expansion of %v must re-collapse", v.String())
	}
}
