package main

import (
	"context"
	"flag"
	"io/fs"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/toroidal-gol/model"
	"github.com/sheikhrachel/toroidal-gol/universe"
	"github.com/sheikhrachel/toroidal-gol/utils"
)

const reportEvery = 50

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON or TOML config file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	missing := errors.Is(err, fs.ErrNotExist)
	if missing {
		config = utils.DefaultConfig()
	}
	utils.InitLogger(os.Stderr, "toroidal-gol", config.LogLevel)
	switch {
	case missing:
		log.Info().Str("path", *configPath).Msg("config not found, using defaults")
	case err != nil:
		log.Fatal().Err(err).Msg("failed to load config")
	}

	u, history, stats, err := initializeGame(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize universe")
	}
	renderer := model.NewTerminalRenderer()
	renderer.Color = config.Color
	displayGameInfo(renderer.Out, config, u)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		eg, egCtx           = errgroup.WithContext(ctx)
		loopCtx, cancelLoop = context.WithCancel(egCtx)
		reports             = make(chan status, 1)
	)
	eg.Go(func() error {
		defer close(reports)
		// the game ending on its own stops the metrics server too
		defer cancelLoop()
		return runGame(loopCtx, config, u, history, stats, renderer, reports)
	})
	if config.MetricsAddr != "" {
		log.Info().Str("addr", config.MetricsAddr).Msg("serving metrics")
		eg.Go(func() error {
			return utils.ServeMetrics(loopCtx, config.MetricsAddr)
		})
	}
	eg.Go(func() error {
		for st := range reports {
			ev := log.Info()
			if st.Restarted {
				ev = ev.Str("reason", st.RestartNote)
			}
			ev.Uint64("generation", st.Generation).
				Int("living", st.Living).
				Str("status", st.Label).
				Msg("generation report")
		}
		return nil
	})

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("game loop failed")
		os.Exit(1)
	}
	log.Info().
		Uint64("generations", stats.TotalGenerations).
		Float64("seconds", stats.Runtime().Seconds()).
		Float64("avg_population", stats.AveragePopulation).
		Int("restarts", stats.Restarts).
		Msg("shutting down")
}

// runGame is the frame loop. It is the only goroutine touching the universe.
func runGame(
	ctx context.Context,
	config utils.Config,
	u *universe.Universe,
	history *universe.History,
	stats *utils.Stats,
	renderer *model.TerminalRenderer,
	reports chan<- status,
) error {
	var (
		rng           = rand.New(rand.NewPCG(uint64(config.Seed), 1))
		stagnantCount = 0
		total         uint64
		lastFrameTime = time.Now()
		ticker        = time.NewTicker(max(config.FrameRate.Std(), time.Millisecond))
	)
	defer ticker.Stop()

	for {
		frameStart := time.Now()
		if err := renderer.Clear(); err != nil {
			return err
		}

		st := updateGameState(u, history)
		stats.Update(total, st.Living, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		if st.IsStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(renderer.Out, st, stats, total)
		cells, err := u.CellsView().Cells()
		if err != nil {
			return err
		}
		var counts model.NeighborCounts
		if renderer.Color {
			if counts, err = u.NeighborCounts(); err != nil {
				return err
			}
		}
		if err = renderer.Display(u.Dims(), cells, counts); err != nil {
			return err
		}

		if config.MaxGenerations > 0 && total >= uint64(config.MaxGenerations) {
			log.Info().Int("max_generations", config.MaxGenerations).Msg("reached generation limit")
			return nil
		}

		shouldRestart, reason := checkRestartConditions(st.Living, stagnantCount, u.Generation(), config)
		if shouldRestart && config.AutoRestart {
			restartGame(config, u, history, rng.Int64())
			stats.Restarts++
			stagnantCount = 0
			utils.RecordRestart(reason)
			st.Restarted, st.RestartNote = true, reason
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			if err := injectLife(u, rng, config.InjectionCount); err != nil {
				return err
			}
		}

		if st.Restarted || total%reportEvery == 0 {
			select {
			case reports <- st:
			default:
			}
		}

		tickStart := time.Now()
		u.Tick()
		total++
		utils.RecordTick(u.Population(), time.Since(tickStart))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
