package universe

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/toroidal-gol/model"
	"github.com/sheikhrachel/toroidal-gol/rules"
)

const (
	DefaultWidth  = 64
	DefaultHeight = 64
)

// Universe owns one live grid and advances it a generation at a time. It is
// not safe for concurrent use: a single goroutine owns it, and any View
// handed out must not be read while Tick runs.
type Universe struct {
	dims       model.Dims
	cells      *model.Grid
	pool       *model.GridPool
	generation uint64
	// version changes on every mutation so views can detect staleness,
	// including across Reset where generation restarts at zero
	version uint64
}

// New returns the default 64x64 universe seeded with ReferenceSeed
func New() *Universe {
	u, err := NewWithDims(DefaultWidth, DefaultHeight, ReferenceSeed)
	if err != nil {
		panic(err)
	}
	return u
}

// NewWithDims builds a universe of the given size. A nil seed falls back to ReferenceSeed.
func NewWithDims(width, height int, seed SeedPolicy) (*Universe, error) {
	dims, err := model.NewDims(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewWithDims] failed to build universe")
	}
	u := &Universe{
		dims: dims,
		pool: model.NewGridPool(),
	}
	u.cells = u.pool.Get(dims)
	fill(u.cells, seed)
	return u, nil
}

// FromGrid builds a universe starting from a copy of grid. Later changes to
// grid are not seen by the universe.
func FromGrid(grid *model.Grid) (*Universe, error) {
	if grid == nil {
		return nil, errors.Wrap(model.ErrInvalidGridSize, "[FromGrid] nil grid")
	}
	if _, err := model.NewDims(grid.GetWidth(), grid.GetHeight()); err != nil {
		return nil, errors.Wrap(err, "[FromGrid] failed to build universe")
	}
	if err := grid.Validate(); err != nil {
		return nil, errors.Wrap(err, "[FromGrid] failed to build universe")
	}
	u := &Universe{
		dims: grid.Dims(),
		pool: model.NewGridPool(),
	}
	u.cells = u.pool.Get(u.dims)
	u.cells.CopyFrom(grid)
	return u, nil
}

// Tick advances one generation. Neighbor counts are derived from the current
// grid every call, and the next generation is written to a separate buffer
// that replaces the current one only once it is complete.
func (u *Universe) Tick() {
	counts, err := model.CountNeighbors(u.dims, u.cells)
	if err != nil {
		// dims and grid are fixed together at construction
		panic(err)
	}

	next := u.pool.Get(u.dims)
	cur, out := u.cells.Cells(), next.Cells()
	for i, c := range cur {
		out[i] = rules.NextState(c, counts[i])
	}

	prev := u.cells
	u.cells = next
	u.generation++
	u.version++
	model.GridToPool(prev, u.pool)
}

// Reset reseeds the universe in place and restarts the generation count
func (u *Universe) Reset(seed SeedPolicy) {
	u.cells.Clear()
	fill(u.cells, seed)
	u.generation = 0
	u.version++
}

// Edit hands the live grid to fn for direct modification. Outstanding views
// become stale. If fn leaves the grid with different dimensions or a buffer
// of the wrong length, the previous cells are restored and
// ErrInvalidGridSize is returned.
func (u *Universe) Edit(fn func(g *model.Grid)) error {
	before := u.CopyCells()
	fn(u.cells)
	u.version++

	if u.cells.Dims() == u.dims && u.cells.Validate() == nil {
		return nil
	}
	got := u.cells.Dims()
	restored := model.NewGrid(u.dims)
	copy(restored.Cells(), before)
	u.cells = restored
	return errors.Wrapf(model.ErrInvalidGridSize, "[Universe.Edit] edit resized %dx%d grid to %dx%d",
		u.dims.Width, u.dims.Height, got.Width, got.Height)
}

// NeighborCounts returns the live neighbor count of every cell in the
// current generation. Counts are computed on each call and never cached.
func (u *Universe) NeighborCounts() (model.NeighborCounts, error) {
	counts, err := model.CountNeighbors(u.dims, u.cells)
	if err != nil {
		return nil, errors.Wrap(err, "[Universe.NeighborCounts]")
	}
	return counts, nil
}

// Width returns the number of columns
func (u *Universe) Width() int {
	return u.dims.Width
}

// Height returns the number of rows
func (u *Universe) Height() int {
	return u.dims.Height
}

// Dims returns the universe extent
func (u *Universe) Dims() model.Dims {
	return u.dims
}

// Generation returns how many ticks have run since construction or the last Reset
func (u *Universe) Generation() uint64 {
	return u.generation
}

// Population returns the number of living cells
func (u *Universe) Population() int {
	return u.cells.CountLivingCells()
}

// Hash returns a digest of the current generation
func (u *Universe) Hash() string {
	return u.cells.GetGridHash()
}

// CellsView returns a zero-copy view of the current generation. The view
// dies on the next Tick, Reset or Edit; re-fetch after each one.
func (u *Universe) CellsView() View {
	return View{
		owner:   u,
		cells:   u.cells.Cells(),
		version: u.version,
	}
}

// CopyCells returns a snapshot of the current generation that stays valid
// after later ticks
func (u *Universe) CopyCells() []model.Cell {
	return append([]model.Cell(nil), u.cells.Cells()...)
}

// Render returns the current generation as glyph text
func (u *Universe) Render() string {
	out, err := model.TextRenderer{}.Render(u.dims, u.cells.Cells())
	if err != nil {
		panic(err)
	}
	return out
}

func (u *Universe) String() string {
	return u.Render()
}
