package rules

import "github.com/sheikhrachel/toroidal-gol/model"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextState maps a cell and its live neighbor count to the cell's state in
// the next generation:
//
//	Alive, < 2    -> Dead  (underpopulation)
//	Alive, 2 or 3 -> Alive (survival)
//	Alive, > 3    -> Dead  (overpopulation)
//	Dead,  3      -> Alive (reproduction)
//	Dead,  other  -> Dead
func NextState(cell model.Cell, liveNeighbors uint8) model.Cell {
	return model.CellFromBool(ApplyConwayRules(int(liveNeighbors), cell == model.Alive))
}
