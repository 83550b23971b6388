package model

import "github.com/pkg/errors"

// Dims is the fixed extent of a grid. Both fields are at least 1 once built
// through NewDims.
type Dims struct {
	Width  int
	Height int
}

// NewDims validates and returns a grid extent
func NewDims(width, height int) (Dims, error) {
	if width < 1 || height < 1 {
		return Dims{}, errors.Wrapf(ErrInvalidDimensions, "[NewDims] width=%d height=%d", width, height)
	}
	return Dims{Width: width, Height: height}, nil
}

// Area returns the number of cells in a grid of these dimensions
func (d Dims) Area() int {
	return d.Width * d.Height
}

// Index returns the row-major offset of (row, col) after reducing both
// coordinates onto the torus. Any integer is accepted.
func (d Dims) Index(row, col int) int {
	return wrap(row, d.Height)*d.Width + wrap(col, d.Width)
}

// Coords is the inverse of Index for an in-range offset
func (d Dims) Coords(idx int) (row, col int) {
	return idx / d.Width, idx % d.Width
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
