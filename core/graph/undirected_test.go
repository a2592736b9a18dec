package graph_test

import (
	"testing"

	"github.com/cgt-lang/cgt/core/cgterrors"
	"github.com/cgt-lang/cgt/core/graph"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	g := graph.Empty(4)
	assert.Equal(t, 4, g.Size())
	assert.Empty(t, g.Edges())
	assert.False(t, g.AreAdjacent(0, 1))
}

func TestConnectDisconnect(t *testing.T) {
	g := graph.Empty(3)
	g.Connect(0, 2, true)
	assert.True(t, g.AreAdjacent(0, 2))
	assert.True(t, g.AreAdjacent(2, 0), "edges are undirected")

	g.Connect(2, 0, false)
	assert.False(t, g.AreAdjacent(0, 2))
}

func TestFromEdges(t *testing.T) {
	g := graph.FromEdges(5, [][2]int{{0, 1}, {0, 2}, {1, 2}, {3, 4}})
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}, {3, 4}}, g.Edges())
	assert.Equal(t, []int{1, 2}, g.AdjacentTo(0))
	assert.Equal(t, []int{4}, g.AdjacentTo(3))
}

func TestFromFlatMatrix(t *testing.T) {
	g, err := graph.FromFlatMatrix(2, []bool{
		false, true,
		true, false,
	})
	require.NoError(t, err)
	assert.True(t, g.AreAdjacent(0, 1))

	_, err = graph.FromFlatMatrix(2, []bool{true})
	require.Error(t, err)
	assert.ErrorIs(t, err, cgterrors.InvalidInput)
}

func TestDegree(t *testing.T) {
	assert.Equal(t, 0, graph.Empty(3).Degree())

	g := graph.FromEdges(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	assert.Equal(t, 3, g.Degree())
}

func TestIsConnected(t *testing.T) {
	assert.True(t, graph.Empty(0).IsConnected())
	assert.True(t, graph.Empty(1).IsConnected())
	assert.False(t, graph.Empty(2).IsConnected())

	path := graph.FromEdges(3, [][2]int{{0, 1}, {1, 2}})
	assert.True(t, path.IsConnected())

	split := graph.FromEdges(4, [][2]int{{0, 1}, {2, 3}})
	assert.False(t, split.IsConnected())
}

func TestCloneIsDeep(t *testing.T) {
	g := graph.FromEdges(3, [][2]int{{0, 1}})
	c := g.Clone()
	c.Connect(1, 2, true)

	assert.False(t, g.AreAdjacent(1, 2), "mutating the clone must not affect the original")
	assert.True(t, c.AreAdjacent(0, 1))
	assert.Empty(t, cmp.Diff([][2]int{{0, 1}}, g.Edges()))
}
