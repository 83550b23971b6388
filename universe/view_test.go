package universe

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/toroidal-gol/model"
)

func TestViewSharesLiveBuffer(t *testing.T) {
	u := New()
	view := u.CellsView()
	if view.Stale() {
		t.Fatal("fresh view should not be stale")
	}
	if view.Len() != 64*64 {
		t.Fatalf("Len=%d, expected %d", view.Len(), 64*64)
	}
	cells, err := view.Cells()
	if err != nil {
		t.Fatalf("Cells: %v", err)
	}
	c, err := view.At(-1, -1)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if c != cells[len(cells)-1] {
		t.Fatal("At(-1,-1) should wrap to the last cell")
	}
}

func TestViewInvalidatedByMutation(t *testing.T) {
	mutations := map[string]func(u *Universe){
		"tick":  func(u *Universe) { u.Tick() },
		"reset": func(u *Universe) { u.Reset(EmptySeed) },
		"edit":  func(u *Universe) { _ = u.Edit(func(g *model.Grid) { g.Set(0, 0, model.Alive) }) },
	}
	for name, mutate := range mutations {
		u := New()
		view := u.CellsView()
		mutate(u)

		if !view.Stale() {
			t.Fatalf("%s: view should be stale", name)
		}
		if _, err := view.Cells(); !errors.Is(err, ErrStaleView) {
			t.Fatalf("%s: Cells err=%v, expected ErrStaleView", name, err)
		}
		if _, err := view.At(0, 0); !errors.Is(err, ErrStaleView) {
			t.Fatalf("%s: At err=%v, expected ErrStaleView", name, err)
		}
		if u.CellsView().Stale() {
			t.Fatalf("%s: re-fetched view should be live", name)
		}
	}
}

func TestZeroViewIsStale(t *testing.T) {
	var v View
	if !v.Stale() {
		t.Fatal("zero View should be stale")
	}
}

func TestCopyCellsSurvivesTick(t *testing.T) {
	u := newTestUniverse(t, 5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	snapshot := u.CopyCells()
	u.Tick()
	u.Tick()
	u.Tick()
	if snapshot[2*5+1] != model.Alive || snapshot[1*5+2] != model.Dead {
		t.Fatal("copied cells must not follow later generations")
	}
}
