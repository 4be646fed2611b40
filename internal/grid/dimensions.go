package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a grid would have no addressable cell.
var ErrInvalidDimensions = errors.New("grid must have at least one row and one column")

// Dimensions is the fixed size of a grid for the lifetime of a session.
type Dimensions struct {
	Rows int
	Cols int
}

// NewDimensions validates and returns grid dimensions.
func NewDimensions(rows, cols int) (Dimensions, error) {
	if rows < 1 || cols < 1 {
		return Dimensions{}, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return Dimensions{Rows: rows, Cols: cols}, nil
}

// Contains reports whether c addresses a cell of the grid.
func (d Dimensions) Contains(c Coordinate) bool {
	return c.Row >= 1 && c.Row <= d.Rows && c.Col >= 0 && c.Col < d.Cols
}

// LastCol returns the index of the rightmost column.
func (d Dimensions) LastCol() int {
	return d.Cols - 1
}

// Coordinate identifies one grid cell.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("R%dC%d", c.Row, c.Col)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
