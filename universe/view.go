package universe

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/toroidal-gol/model"
)

// View is a read-only window onto a universe's live cell buffer. It shares
// memory with the universe and is valid only until the universe next
// changes; every accessor reports ErrStaleView after that.
type View struct {
	owner   *Universe
	cells   []model.Cell
	version uint64
}

// Stale reports whether the universe has moved on since the view was taken
func (v View) Stale() bool {
	return v.owner == nil || v.owner.version != v.version
}

// Len returns the number of cells in the view
func (v View) Len() int {
	return len(v.cells)
}

// Cells returns the shared buffer. Callers must not write to it.
func (v View) Cells() ([]model.Cell, error) {
	if v.Stale() {
		return nil, errors.Wrap(ErrStaleView, "[View.Cells]")
	}
	return v.cells, nil
}

// At returns the cell at (row, col), wrapped onto the torus
func (v View) At(row, col int) (model.Cell, error) {
	if v.Stale() {
		return model.Dead, errors.Wrapf(ErrStaleView, "[View.At] row=%d col=%d", row, col)
	}
	return v.cells[v.owner.dims.Index(row, col)], nil
}
