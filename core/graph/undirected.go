// Package graph provides a small mutable undirected graph backed by an
// adjacency matrix. It is the board representation for graph games such as
// Snort, where move generation disconnects edges in place.
package graph

import (
	"github.com/cgt-lang/cgt/core/cgterrors"
	"github.com/cgt-lang/cgt/core/invariant"
)

// Undirected is an undirected graph on vertices 0..size-1. The zero value
// is the empty graph on zero vertices.
type Undirected struct {
	size int
	adj  []bool // size*size, symmetric
}

// Empty returns a graph with size vertices and no edges.
func Empty(size int) Undirected {
	invariant.Require(size >= 0, "graph size must be non-negative, got %d", size)
	return Undirected{size: size, adj: make([]bool, size*size)}
}

// FromEdges returns a graph with size vertices and the given edges.
func FromEdges(size int, edges [][2]int) Undirected {
	g := Empty(size)
	for _, e := range edges {
		g.Connect(e[0], e[1], true)
	}
	return g
}

// FromFlatMatrix builds a graph from a row-major size*size adjacency
// matrix. Fails with an InvalidInput error if the matrix has the wrong length.
func FromFlatMatrix(size int, matrix []bool) (Undirected, error) {
	if len(matrix) != size*size {
		return Undirected{}, cgterrors.New(cgterrors.InvalidInput,
			"adjacency matrix has %d entries, want %d", len(matrix), size*size).
			With("size", size)
	}
	g := Empty(size)
	for u := 0; u < size; u++ {
		for v := 0; v < size; v++ {
			if matrix[size*u+v] {
				g.Connect(u, v, true)
			}
		}
	}
	return g, nil
}

// Size returns the number of vertices.
func (g Undirected) Size() int { return g.size }

// Connect adds (connected=true) or removes (connected=false) the edge u-v.
func (g *Undirected) Connect(u, v int, connected bool) {
	invariant.Index(u, g.size, "vertex")
	invariant.Index(v, g.size, "vertex")
	g.adj[g.size*u+v] = connected
	g.adj[g.size*v+u] = connected
}

// AreAdjacent reports whether the edge u-v is present.
func (g Undirected) AreAdjacent(u, v int) bool {
	return g.adj[g.size*u+v]
}

// AdjacentTo returns the vertices adjacent to v in ascending order.
func (g Undirected) AdjacentTo(v int) []int {
	var adjacent []int
	for u := 0; u < g.size; u++ {
		if g.adj[g.size*v+u] {
			adjacent = append(adjacent, u)
		}
	}
	return adjacent
}

// Edges returns every edge u-v with u < v.
func (g Undirected) Edges() [][2]int {
	var edges [][2]int
	for u := 0; u < g.size; u++ {
		for v := u + 1; v < g.size; v++ {
			if g.adj[g.size*u+v] {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	return edges
}

// Degree returns the highest vertex degree in the graph.
func (g Undirected) Degree() int {
	best := 0
	for v := 0; v < g.size; v++ {
		d := 0
		for u := 0; u < g.size; u++ {
			if g.adj[g.size*v+u] {
				d++
			}
		}
		if d > best {
			best = d
		}
	}
	return best
}

// IsConnected reports whether the graph is connected. The empty graph is
// connected.
func (g Undirected) IsConnected() bool {
	if g.size == 0 {
		return true
	}

	seen := make([]bool, g.size)
	queue := []int{0}
	seen[0] = true

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range g.AdjacentTo(v) {
			if u != v && !seen[u] {
				seen[u] = true
				queue = append(queue, u)
			}
		}
	}

	for _, s := range seen {
		if !s {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of g.
func (g Undirected) Clone() Undirected {
	adj := make([]bool, len(g.adj))
	copy(adj, g.adj)
	return Undirected{size: g.size, adj: adj}
}
