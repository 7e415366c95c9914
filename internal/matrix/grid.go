// Package matrix provides the dense pixel grid and sparse color layers
// that model an addressable LED matrix.
package matrix

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// ErrInvalidDimension reports a non-positive row or column count at
	// construction.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrOutOfBounds reports a cell index outside the grid.
	ErrOutOfBounds = errors.New("matrix: cell out of bounds")
)

// Grid is a fixed-size rows×cols field of colors. Every cell always
// holds a defined color; Grid backs the matrix background and
// composited frames.
type Grid struct {
	rows, cols int
	cells      []color.RGBA
}

// NewGrid creates a grid with every cell set to fill.
func NewGrid(rows, cols int, fill color.RGBA) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]color.RGBA, rows*cols),
	}
	g.Fill(fill)
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds returns true if the cell index is inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the color of a single cell.
func (g *Grid) At(row, col int) (color.RGBA, error) {
	if !g.InBounds(row, col) {
		return color.RGBA{}, fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.cells[row*g.cols+col], nil
}

// Set changes the color of a single cell. No other cell is affected;
// recompositing is the caller's responsibility.
func (g *Grid) Set(row, col int, c color.RGBA) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	g.cells[row*g.cols+col] = c
	return nil
}

// Fill sets every cell to c.
func (g *Grid) Fill(c color.RGBA) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]color.RGBA, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether both grids have the same dimensions and cell
// colors.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
