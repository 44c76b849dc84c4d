package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/sim"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagSimTicks   int
	flagSimSpeed   float64
	flagSimTimeout time.Duration
	flagSimSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot play headlessly",
	Long: `Run a game without a terminal. The game's own timers are scheduled
as usual (optionally sped up) and the autopilot steers and fires.

Examples:
  invaders sim
  invaders sim --seed 42 --ticks 5000 --speed 50
  invaders sim --save --log-level info`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 0, "Stop after this many ticks (0 = until game over)")
	simCmd.Flags().Float64Var(&flagSimSpeed, "speed", 10, "Timer speed-up factor")
	simCmd.Flags().DurationVar(&flagSimTimeout, "timeout", 5*time.Minute, "Give up after this long")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the final score as player 'autopilot'")
}

func runSim(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagSimTimeout)
	defer cancel()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("simulation starting", "seed", seed, "ticks", flagSimTicks, "speed", flagSimSpeed)
	rep, err := sim.Run(ctx, sim.Options{
		Seed:   seed,
		Ticks:  flagSimTicks,
		Speed:  flagSimSpeed,
		Logger: logger.WithPrefix("sim"),
	})
	if err != nil {
		logger.Warn("simulation ended early", "error", err)
	}

	fmt.Printf("seed=%d ticks=%d signals=%d score=%d level=%d game_over=%t hash=%016x elapsed=%s\n",
		seed, rep.Ticks, rep.Signals, rep.Score, rep.Level, rep.GameOver, rep.Hash, rep.Elapsed.Round(time.Millisecond))
	if rep.Dropped > 0 {
		logger.Warn("autopilot input dropped", "events", rep.Dropped)
	}

	if flagSimSave && rep.Score > 0 {
		store, openErr := storage.Open(flagDBPath)
		if openErr != nil {
			return fmt.Errorf("opening scores database: %w", openErr)
		}
		defer store.Close()

		entry, saveErr := store.SaveScore(storage.ScoreEntry{
			GameID: "invaders",
			Player: "autopilot",
			Score:  rep.Score,
			Level:  rep.Level,
		})
		if saveErr != nil {
			return saveErr
		}
		logger.Info("score saved", "run", entry.RunID)
	}

	return err
}
