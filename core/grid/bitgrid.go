// Package grid provides a small fixed-size bit grid used as the board
// representation for rectangular-board games such as Domineering.
package grid

import (
	"strings"

	"github.com/cgt-lang/cgt/core/cgterrors"
	"github.com/cgt-lang/cgt/core/invariant"
)

// MaxCells is the capacity of a Bit grid.
const MaxCells = 64

// Bit is a Width x Height grid of cells packed into a single word. The
// zero value is the 0x0 grid. Bit is a value type: Set returns a new
// grid. Fields are exported so positions embedding a grid hash and
// compare structurally.
type Bit struct {
	Width, Height int
	Cells         uint64
}

// Empty returns an all-clear grid. Fails with an InvalidInput error if the grid
// would not fit in 64 cells.
func Empty(width, height int) (Bit, error) {
	if width < 0 || height < 0 || width*height > MaxCells {
		return Bit{}, cgterrors.New(cgterrors.InvalidInput,
			"grid %dx%d exceeds %d cells", width, height, MaxCells)
	}
	return Bit{Width: width, Height: height}, nil
}

// Parse builds a grid from rows separated by '|', with '.' for clear and
// '#' for filled cells, e.g. "..#|...".
func Parse(s string) (Bit, error) {
	rows := strings.Split(s, "|")
	height := len(rows)
	width := len(rows[0])

	b, err := Empty(width, height)
	if err != nil {
		return Bit{}, err
	}
	for y, row := range rows {
		if len(row) != width {
			return Bit{}, cgterrors.New(cgterrors.InvalidInput,
				"row %d has %d cells, want %d", y, len(row), width)
		}
		for x, c := range row {
			switch c {
			case '.':
			case '#':
				b = b.Set(x, y, true)
			default:
				return Bit{}, cgterrors.New(cgterrors.InvalidInput,
					"unexpected cell %q at %d,%d", c, x, y)
			}
		}
	}
	return b, nil
}

// Get reports whether the cell at x,y is filled.
func (b Bit) Get(x, y int) bool {
	b.check(x, y)
	return b.Cells&(1<<uint(y*b.Width+x)) != 0
}

// Set returns a copy of b with the cell at x,y set.
func (b Bit) Set(x, y int, filled bool) Bit {
	b.check(x, y)
	bit := uint64(1) << uint(y*b.Width+x)
	if filled {
		b.Cells |= bit
	} else {
		b.Cells &^= bit
	}
	return b
}

// String renders the grid in the Parse format.
func (b Bit) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		if y > 0 {
			sb.WriteByte('|')
		}
		for x := 0; x < b.Width; x++ {
			if b.Get(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func (b Bit) check(x, y int) {
	invariant.Index(x, b.Width, "x")
	invariant.Index(y, b.Height, "y")
}
