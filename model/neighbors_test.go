package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func TestCountNeighborsWrapsFromOrigin(t *testing.T) {
	dims := Dims{Width: 5, Height: 4}
	g := NewGrid(dims)
	g.Set(0, 0, Alive)

	counts, err := CountNeighbors(dims, g)
	if err != nil {
		t.Fatalf("CountNeighbors: %v", err)
	}
	if len(counts) != g.Len() {
		t.Fatalf("len(counts)=%d, expected %d", len(counts), g.Len())
	}

	h, w := dims.Height, dims.Width
	neighbors := map[[2]int]bool{
		{h - 1, w - 1}: true,
		{h - 1, 0}:     true,
		{h - 1, 1}:     true,
		{0, w - 1}:     true,
		{0, 1}:         true,
		{1, w - 1}:     true,
		{1, 0}:         true,
		{1, 1}:         true,
	}
	for row := range h {
		for col := range w {
			want := uint8(0)
			if neighbors[[2]int{row, col}] {
				want = 1
			}
			if got := counts[dims.Index(row, col)]; got != want {
				t.Fatalf("count at (%d,%d)=%d, expected %d", row, col, got, want)
			}
		}
	}
}

func TestCountNeighborsBounded(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for _, dims := range []Dims{{1, 1}, {1, 5}, {2, 2}, {3, 7}, {16, 9}} {
		g := NewGrid(dims)
		for i := range g.Cells() {
			g.Cells()[i] = Cell(rng.IntN(2))
		}
		counts, err := CountNeighbors(dims, g)
		if err != nil {
			t.Fatalf("%v: %v", dims, err)
		}
		for i, c := range counts {
			if c > 8 {
				t.Fatalf("%v: count[%d]=%d exceeds 8", dims, i, c)
			}
		}
	}
}

func TestCountNeighborsSingleCell(t *testing.T) {
	dims := Dims{Width: 1, Height: 1}
	g := NewGrid(dims)
	g.Set(0, 0, Alive)
	counts, err := CountNeighbors(dims, g)
	if err != nil {
		t.Fatalf("CountNeighbors: %v", err)
	}
	// all eight offsets wrap back onto the only cell
	if counts[0] != 8 {
		t.Fatalf("count=%d, expected 8", counts[0])
	}
}

func TestCountNeighborsFullGrid(t *testing.T) {
	dims := Dims{Width: 4, Height: 4}
	g := NewGrid(dims)
	for i := range g.Cells() {
		g.Cells()[i] = Alive
	}
	counts, err := CountNeighbors(dims, g)
	if err != nil {
		t.Fatalf("CountNeighbors: %v", err)
	}
	for i, c := range counts {
		if c != 8 {
			t.Fatalf("count[%d]=%d, expected 8", i, c)
		}
	}
}

func TestCountNeighborsSizeMismatch(t *testing.T) {
	g := NewGrid(Dims{Width: 3, Height: 3})
	if _, err := CountNeighbors(Dims{Width: 4, Height: 4}, g); !errors.Is(err, ErrInvalidGridSize) {
		t.Fatalf("expected ErrInvalidGridSize, got %v", err)
	}
	if _, err := CountNeighbors(Dims{Width: 4, Height: 4}, nil); !errors.Is(err, ErrInvalidGridSize) {
		t.Fatalf("expected ErrInvalidGridSize for nil grid, got %v", err)
	}
}

func TestCountNeighborsDoesNotMutate(t *testing.T) {
	dims := Dims{Width: 5, Height: 5}
	g := NewGrid(dims)
	g.AddGlider(1, 1)
	before := g.GetGridHash()
	if _, err := CountNeighbors(dims, g); err != nil {
		t.Fatalf("CountNeighbors: %v", err)
	}
	if g.GetGridHash() != before {
		t.Fatal("CountNeighbors must not modify the grid")
	}
}
