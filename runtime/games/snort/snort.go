// Package snort implements Snort, played on an undirected graph: Left
// colors a vertex blue, Right colors a vertex red, and a vertex may only
// be chosen when all of its neighbors are empty or of the mover's color.
//
// Instead of tracking neighbor colors directly, vertices are tinted: a
// vertex adjacent to a taken blue vertex becomes TintLeft and is then
// playable only by Left, and symmetrically for Right.
package snort

import (
	"fmt"
	"strings"

	"github.com/cgt-lang/cgt/core/cgterrors"
	"github.com/cgt-lang/cgt/core/graph"
)

// VertexColor is the state of a Snort vertex.
type VertexColor uint8

const (
	// Empty is an uncolored vertex not adjacent to any taken vertex.
	Empty VertexColor = iota

	// TintLeft is a vertex adjacent to a blue vertex; only Left may take it.
	TintLeft

	// TintRight is a vertex adjacent to a red vertex; only Right may take it.
	TintRight

	// Taken is a colored vertex, or one adjacent to both colors and
	// therefore dead.
	Taken
)

// Position is a Snort position: a tint per vertex plus the live edges.
type Position struct {
	Vertices []VertexColor
	Graph    graph.Undirected
}

// New returns a position on g with every vertex empty.
func New(g graph.Undirected) Position {
	return Position{
		Vertices: make([]VertexColor, g.Size()),
		Graph:    g,
	}
}

// WithColors returns a position with the given initial tints. It is the
// caller's responsibility that no conflicting colors are adjacent. Fails
// with an InvalidInput error if vertices and graph sizes disagree.
func WithColors(vertices []VertexColor, g graph.Undirected) (Position, error) {
	if len(vertices) != g.Size() {
		return Position{}, cgterrors.New(cgterrors.InvalidInput,
			"%d vertex colors for a graph of order %d", len(vertices), g.Size()).
			With("vertices", len(vertices)).
			With("graph", g.Size())
	}
	return Position{Vertices: append([]VertexColor(nil), vertices...), Graph: g}, nil
}

// LeftMoves enumerates Left's moves.
func (p Position) LeftMoves() []Position { return p.movesFor(TintLeft) }

// RightMoves enumerates Right's moves.
func (p Position) RightMoves() []Position { return p.movesFor(TintRight) }

// movesFor enumerates moves for the player whose tint is ownTint. The
// player may take any empty vertex or one tinted in their own color;
// taking a vertex disconnects it and re-tints its neighborhood.
func (p Position) movesFor(ownTint VertexColor) []Position {
	var moves []Position

	for v, color := range p.Vertices {
		if color != Empty && color != ownTint {
			continue
		}

		next := p.clone()
		next.Vertices[v] = Taken

		for _, u := range p.Graph.AdjacentTo(v) {
			next.Graph.Connect(v, u, false)
			if u == v {
				continue // no loops in snort graphs
			}
			switch next.Vertices[u] {
			case Empty, ownTint:
				next.Vertices[u] = ownTint
			case Taken:
			default:
				// Tinted in the opponent's color: nobody can move there
				// anymore, so it dies and leaves the graph.
				next.Vertices[u] = Taken
				for w := 0; w < next.Graph.Size(); w++ {
					next.Graph.Connect(w, u, false)
				}
			}
		}
		moves = append(moves, next)
	}
	return moves
}

// Decompositions splits the position into its connected components,
// dropping taken vertices. Vertex order within a component follows the
// BFS discovery order, so equal components compare equal.
func (p Position) Decompositions() []Position {
	visited := make([]bool, len(p.Vertices))
	var components []Position

	for v := range p.Vertices {
		if p.Vertices[v] != Taken && !visited[v] {
			components = append(components, p.bfs(visited, v))
		}
	}
	return components
}

// bfs extracts the connected component containing v as a fresh position.
func (p Position) bfs(visited []bool, v int) Position {
	var take []int
	queue := []int{v}
	visited[v] = true

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		take = append(take, v)

		for _, u := range p.Graph.AdjacentTo(v) {
			if !visited[u] {
				visited[u] = true
				queue = append(queue, u)
			}
		}
	}

	sub := graph.Empty(len(take))
	index := make(map[int]int, len(take))
	for i, old := range take {
		index[old] = i
	}
	vertices := make([]VertexColor, len(take))
	for i, old := range take {
		vertices[i] = p.Vertices[old]
		for _, u := range p.Graph.AdjacentTo(old) {
			if j, ok := index[u]; ok {
				sub.Connect(i, j, true)
			}
		}
	}
	return Position{Vertices: vertices, Graph: sub}
}

func (p Position) clone() Position {
	return Position{
		Vertices: append([]VertexColor(nil), p.Vertices...),
		Graph:    p.Graph.Clone(),
	}
}

// Graphviz renders the position in dot format for external layout
// engines. Taken vertices are omitted.
func (p Position) Graphviz() string {
	var sb strings.Builder
	sb.WriteString("graph G {")

	for v, color := range p.Vertices {
		var fill string
		switch color {
		case Empty:
			fill = "white"
		case TintLeft:
			fill = "blue"
		case TintRight:
			fill = "red"
		case Taken:
			continue
		}
		fmt.Fprintf(&sb,
			"%d [fillcolor=%s, style=filled, shape=circle, fixedsize=true, width=1, height=1, fontsize=24];",
			v, fill)
	}

	for _, e := range p.Graph.Edges() {
		fmt.Fprintf(&sb, "%d -- %d;", e[0], e[1])
	}

	sb.WriteString("}")
	return sb.String()
}
