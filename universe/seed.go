package universe

import (
	"math/rand/v2"

	"github.com/sheikhrachel/toroidal-gol/model"
)

// SeedPolicy decides the initial state of the cell at a row-major index
type SeedPolicy func(index int) model.Cell

// ReferenceSeed makes every even cell and every multiple of 7 alive
func ReferenceSeed(index int) model.Cell {
	return model.CellFromBool(index%2 == 0 || index%7 == 0)
}

// EmptySeed leaves every cell dead
func EmptySeed(int) model.Cell {
	return model.Dead
}

// RandomSeed returns a deterministic policy bringing each cell to life with
// the given probability. The same seed always yields the same board when the
// policy is applied in index order.
func RandomSeed(density float64, seed int64) SeedPolicy {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	return func(int) model.Cell {
		return model.CellFromBool(rng.Float64() < density)
	}
}

func fill(g *model.Grid, seed SeedPolicy) {
	if seed == nil {
		seed = ReferenceSeed
	}
	cells := g.Cells()
	for i := range cells {
		cells[i] = seed(i)
	}
}

// PatternSeed lays out gliders and blinkers sized to the board, then
// sprinkles random life on top at the given density
func PatternSeed(dims model.Dims, density float64, seed int64) SeedPolicy {
	g := model.NewGrid(dims)
	w, h := dims.Width, dims.Height
	if w >= 10 && h >= 10 {
		g.AddGlider(5, 5)
		if w >= 20 && h >= 15 {
			g.AddGlider(5, w-8)
		}

		g.AddOscillator(h/4, w/4)
		if w >= 30 {
			g.AddOscillator(3*h/4, 3*w/4)
		}
	}

	noise := RandomSeed(density, seed)
	cells := g.Cells()
	for i := range cells {
		if noise(i) == model.Alive {
			cells[i] = model.Alive
		}
	}

	return func(index int) model.Cell {
		if index < 0 || index >= len(cells) {
			return model.Dead
		}
		return cells[index]
	}
}
