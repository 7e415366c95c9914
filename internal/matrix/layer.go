package matrix

import (
	"fmt"
	"image/color"
)

// Layer is a rows×cols sparse color field. Cells that were never
// written hold the transparent sentinel, which is distinct from every
// real color including fully transparent black. Layers back individual
// elements in the compositor; only the background is a dense Grid.
type Layer struct {
	rows, cols int
	cells      []color.RGBA
	set        []bool
}

// NewLayer creates an all-transparent layer.
func NewLayer(rows, cols int) (*Layer, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	return &Layer{
		rows:  rows,
		cols:  cols,
		cells: make([]color.RGBA, rows*cols),
		set:   make([]bool, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (l *Layer) Rows() int { return l.rows }

// Cols returns the number of columns.
func (l *Layer) Cols() int { return l.cols }

// At returns the color at the cell and whether the cell holds one.
// Unset and out-of-range cells report false.
func (l *Layer) At(row, col int) (color.RGBA, bool) {
	if row < 0 || row >= l.rows || col < 0 || col >= l.cols {
		return color.RGBA{}, false
	}
	i := row*l.cols + col
	return l.cells[i], l.set[i]
}

// Set writes a color to the cell.
func (l *Layer) Set(row, col int, c color.RGBA) error {
	if row < 0 || row >= l.rows || col < 0 || col >= l.cols {
		return fmt.Errorf("%w: (%d, %d) in %dx%d layer", ErrOutOfBounds, row, col, l.rows, l.cols)
	}
	i := row*l.cols + col
	l.cells[i] = c
	l.set[i] = true
	return nil
}

// Clear resets every cell to the transparent sentinel.
func (l *Layer) Clear() {
	for i := range l.set {
		l.set[i] = false
		l.cells[i] = color.RGBA{}
	}
}
