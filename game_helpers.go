package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/sheikhrachel/toroidal-gol/model"
	"github.com/sheikhrachel/toroidal-gol/universe"
	"github.com/sheikhrachel/toroidal-gol/utils"
)

const periodicRefresh = 200

// status is what one frame of the game loop reports
type status struct {
	Generation  uint64
	Living      int
	Density     float64
	Label       string
	IsStagnant  bool
	Restarted   bool
	RestartNote string
}

// seedPolicy picks the initial layout described by config
func seedPolicy(config utils.Config, dims model.Dims, seed int64) universe.SeedPolicy {
	switch config.SeedPolicy {
	case utils.SeedPolicyRandom:
		return universe.RandomSeed(config.RandomDensity, seed)
	case utils.SeedPolicyPatterns:
		return universe.PatternSeed(dims, config.RandomDensity, seed)
	default:
		return universe.ReferenceSeed
	}
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*universe.Universe, *universe.History, *utils.Stats, error) {
	dims, err := model.NewDims(config.Width, config.Height)
	if err != nil {
		return nil, nil, nil, err
	}
	u, err := universe.NewWithDims(dims.Width, dims.Height, seedPolicy(config, dims, config.Seed))
	if err != nil {
		return nil, nil, nil, err
	}
	return u, universe.NewHistory(config.HistorySize), utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, u *universe.Universe) {
	fmt.Fprintf(w, "Seed: %s | Auto restart: %v\n", config.SeedPolicy, config.AutoRestart)
	fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d\n", u.Width(), u.Height(), u.Population())
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(w)
}

// updateGameState records the current generation and classifies it
func updateGameState(u *universe.Universe, history *universe.History) status {
	living := u.Population()
	st := status{
		Generation: u.Generation(),
		Living:     living,
		Density:    float64(living) / float64(u.Width()*u.Height()) * 100,
		Label:      "Active",
		IsStagnant: history.IsStagnant(u),
	}
	history.Record(u)

	if st.IsStagnant {
		st.Label = "Stagnant"
	}
	if living == 0 {
		st.Label = "Extinct"
	}
	return st
}

// displayGameStatus shows the current game status
func displayGameStatus(w io.Writer, st status, stats *utils.Stats, generation uint64) {
	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		st.Generation, st.Living, st.Density, st.Label)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | Total: %d\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds(), generation)
	fmt.Fprintln(w)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(living, stagnantCount int, generation uint64, config utils.Config) (bool, string) {
	if living == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the universe with a fresh layout
func restartGame(config utils.Config, u *universe.Universe, history *universe.History, seed int64) {
	u.Reset(seedPolicy(config, u.Dims(), seed))
	history.Clear()
}

// injectLife sprinkles random cells into the live grid to break a cycle
func injectLife(u *universe.Universe, rng *rand.Rand, count int) error {
	return u.Edit(func(g *model.Grid) {
		g.InjectRandomLife(rng, count)
	})
}
