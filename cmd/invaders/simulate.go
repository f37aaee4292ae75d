package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var flagTicks uint64

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot without a display",
	Long: `Play a game with the autopilot as fast as possible and print a summary.
The run stops when the ship is destroyed or after --ticks ticks.

The same seed and config always produce the same summary, including the
final state hash.

Examples:
  invaders simulate
  invaders simulate --seed 42 --ticks 36000
  invaders simulate --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 36000, "Maximum number of ticks to run")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, _, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("simulation started", "seed", seed, "max_ticks", flagTicks)
	start := time.Now()
	sum := invaders.Simulate(cfg, seed, flagTicks, func(ev core.Event) {
		logger.Debug(ev.Type, "entity", ev.Entity, "x", ev.X, "y", ev.Y)
	})
	logger.Info("simulation finished", "ticks", sum.Ticks, "elapsed", time.Since(start))

	outcome := "survived"
	if sum.GameOver {
		outcome = "ship destroyed"
	}

	fmt.Printf("Seed:              %d\n", sum.Seed)
	fmt.Printf("Ticks:             %d (%.1fs of game time)\n", sum.Ticks, sum.Seconds)
	fmt.Printf("Outcome:           %s\n", outcome)
	fmt.Printf("Aliens destroyed:  %d (%d left)\n", sum.AliensDestroyed, sum.AliensLeft)
	fmt.Printf("Rocks destroyed:   %d (%d left)\n", sum.RocksDestroyed, sum.RocksLeft)
	fmt.Printf("Shots fired:       %d\n", sum.Shots)
	fmt.Printf("Enemy shots:       %d\n", sum.Volleys)
	fmt.Printf("State hash:        %016x\n", sum.Hash)
	return nil
}
