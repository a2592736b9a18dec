package numeric_test

import (
	"testing"

	"github.com/cgt-lang/cgt/core/numeric"
	"github.com/stretchr/testify/assert"
)

func TestNimberAdd(t *testing.T) {
	tests := []struct {
		a, b, want numeric.Nimber
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 3, 1},
		{5, 9, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Add(tt.b))
		assert.Equal(t, tt.want, tt.b.Add(tt.a), "nim-sum is commutative")
	}
}

func TestNimberNeg(t *testing.T) {
	for _, n := range []numeric.Nimber{0, 1, 2, 7} {
		assert.Equal(t, n, n.Neg())
		assert.Equal(t, numeric.Nimber(0), n.Add(n.Neg()))
	}
}

func TestNimberString(t *testing.T) {
	assert.Equal(t, "0", numeric.Nimber(0).String())
	assert.Equal(t, "*", numeric.Nimber(1).String())
	assert.Equal(t, "*2", numeric.Nimber(2).String())
	assert.Equal(t, "*10", numeric.Nimber(10).String())
}

func TestMex(t *testing.T) {
	tests := []struct {
		name string
		ks   []numeric.Nimber
		want numeric.Nimber
	}{
		{"empty", nil, 0},
		{"consecutive from zero", []numeric.Nimber{0, 1, 2}, 3},
		{"gap", []numeric.Nimber{0, 2, 3}, 1},
		{"missing zero", []numeric.Nimber{5}, 0},
		{"duplicates", []numeric.Nimber{0, 0, 1, 1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numeric.Mex(tt.ks))
		})
	}
}
