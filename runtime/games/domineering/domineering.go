// Package domineering implements Domineering: players alternately place
// dominoes on a rectangular board, Left vertically and Right
// horizontally, on pairs of free cells.
package domineering

import (
	"github.com/cgt-lang/cgt/core/grid"
)

// orientation selects the mover: both players place the same shape,
// rotated.
type orientation struct {
	dx, dy int
}

var (
	vertical   = orientation{dx: 0, dy: 1} // Left
	horizontal = orientation{dx: 1, dy: 0} // Right
)

// Position is a Domineering position. Filled cells are occupied by
// dominoes or blocked from the start.
type Position struct {
	Grid grid.Bit
}

// New returns an empty width x height board.
func New(width, height int) (Position, error) {
	b, err := grid.Empty(width, height)
	if err != nil {
		return Position{}, err
	}
	return Position{Grid: b}, nil
}

// Parse builds a position from a row string such as "..|.#".
func Parse(s string) (Position, error) {
	b, err := grid.Parse(s)
	if err != nil {
		return Position{}, err
	}
	return Position{Grid: b}, nil
}

// LeftMoves enumerates vertical domino placements.
func (p Position) LeftMoves() []Position { return p.movesFor(vertical) }

// RightMoves enumerates horizontal domino placements.
func (p Position) RightMoves() []Position { return p.movesFor(horizontal) }

func (p Position) movesFor(o orientation) []Position {
	var moves []Position
	for y := 0; y+o.dy < p.Grid.Height; y++ {
		for x := 0; x+o.dx < p.Grid.Width; x++ {
			if p.Grid.Get(x, y) || p.Grid.Get(x+o.dx, y+o.dy) {
				continue
			}
			next := p.Grid.Set(x, y, true).Set(x+o.dx, y+o.dy, true)
			moves = append(moves, Position{Grid: next})
		}
	}
	return moves
}

// Decompositions returns the position itself; the board is not split into
// independent regions.
func (p Position) Decompositions() []Position { return []Position{p} }

// String renders the board in the Parse format.
func (p Position) String() string { return p.Grid.String() }
