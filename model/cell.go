package model

// Cell is a single grid position. It is stored as one byte so that a live
// neighbor count is just the sum of the neighboring cells.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool { return c == Alive }

// CellFromBool maps true to Alive and false to Dead
func CellFromBool(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
