package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Grid is the board: a flat row-major buffer of cells on a torus
type Grid struct {
	dims  Dims
	cells []Cell
}

// NewGrid creates an all-Dead grid with the specified dimensions
func NewGrid(dims Dims) *Grid {
	return &Grid{
		dims:  dims,
		cells: make([]Cell, dims.Area()),
	}
}

// GridFromCells wraps an existing buffer. The buffer is used as-is, not copied.
func GridFromCells(dims Dims, cells []Cell) (*Grid, error) {
	if dims.Width < 1 || dims.Height < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[GridFromCells] width=%d height=%d", dims.Width, dims.Height)
	}
	if len(cells) != dims.Area() {
		return nil, errors.Wrapf(ErrInvalidGridSize, "[GridFromCells] got %d cells for %dx%d", len(cells), dims.Width, dims.Height)
	}
	return &Grid{dims: dims, cells: cells}, nil
}

// Dims returns the extent of the grid
func (g *Grid) Dims() Dims {
	return g.dims
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.dims.Width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.dims.Height
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cells exposes the backing buffer. Writes through it are visible to the grid.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Validate checks that the buffer length still matches the dimensions
func (g *Grid) Validate() error {
	if len(g.cells) != g.dims.Area() {
		return errors.Wrapf(ErrInvalidGridSize, "[Grid.Validate] got %d cells for %dx%d", len(g.cells), g.dims.Width, g.dims.Height)
	}
	return nil
}

// Reset resizes the grid to new dimensions and clears it, reusing the
// buffer when it is large enough
func (g *Grid) Reset(dims Dims) {
	g.dims = dims
	if cap(g.cells) < dims.Area() {
		g.cells = make([]Cell, dims.Area())
		return
	}
	g.cells = g.cells[:dims.Area()]
	clear(g.cells)
}

// Clear kills all cells
func (g *Grid) Clear() {
	clear(g.cells)
}

// CopyFrom overwrites this grid with the contents of src
func (g *Grid) CopyFrom(src *Grid) {
	g.Reset(src.dims)
	copy(g.cells, src.cells)
}

// Index returns the buffer offset of (row, col), wrapped onto the torus
func (g *Grid) Index(row, col int) int {
	return g.dims.Index(row, col)
}

// Set sets the cell at (row, col), wrapping out-of-range coordinates
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.dims.Index(row, col)] = c
}

// Get returns the cell at (row, col), wrapping out-of-range coordinates
func (g *Grid) Get(row, col int) Cell {
	return g.cells[g.dims.Index(row, col)]
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		count += int(c)
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// InjectRandomLife brings count random cells to life
func (g *Grid) InjectRandomLife(rng *rand.Rand, count int) {
	for range count {
		g.cells[rng.IntN(len(g.cells))] = Alive
	}
}

// AddGlider stamps a south-east moving glider with its top-left corner at (row, col)
func (g *Grid) AddGlider(row, col int) {
	pattern := [][]Cell{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}
	g.stamp(row, col, pattern)
}

// AddOscillator adds a horizontal blinker starting at (row, col)
func (g *Grid) AddOscillator(row, col int) {
	g.stamp(row, col, [][]Cell{{Alive, Alive, Alive}})
}

// AddBlock adds a 2x2 still life with its top-left corner at (row, col)
func (g *Grid) AddBlock(row, col int) {
	g.stamp(row, col, [][]Cell{
		{Alive, Alive},
		{Alive, Alive},
	})
}

func (g *Grid) stamp(row, col int, pattern [][]Cell) {
	for dy, line := range pattern {
		for dx, c := range line {
			g.Set(row+dy, col+dx, c)
		}
	}
}
