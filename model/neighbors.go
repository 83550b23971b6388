package model

import "github.com/pkg/errors"

// NeighborCounts holds, for every cell of a grid, how many of its eight
// toroidal neighbors are alive. It is indexed like the grid it was computed
// from and is only meaningful for that exact generation.
type NeighborCounts []uint8

// CountNeighbors computes fresh neighbor counts for every cell of grid
func CountNeighbors(dims Dims, grid *Grid) (NeighborCounts, error) {
	if grid == nil || grid.Len() != dims.Area() {
		n := 0
		if grid != nil {
			n = grid.Len()
		}
		return nil, errors.Wrapf(ErrInvalidGridSize, "[CountNeighbors] got %d cells for %dx%d", n, dims.Width, dims.Height)
	}

	counts := make(NeighborCounts, dims.Area())
	for row := range dims.Height {
		for col := range dims.Width {
			counts[row*dims.Width+col] = liveNeighborCount(dims, grid.cells, row, col)
		}
	}
	return counts, nil
}

// liveNeighborCount sums the eight neighbors of (row, col). On grids one
// cell wide or high several offsets land on the same cell and each offset
// is counted, so the result is always in [0,8].
func liveNeighborCount(dims Dims, cells []Cell, row, col int) uint8 {
	var count uint8
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr + dims.Height) % dims.Height
			c := (col + dc + dims.Width) % dims.Width
			count += uint8(cells[r*dims.Width+c])
		}
	}
	return count
}
