package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/window"
)

var (
	flagAssets    string
	flagAutopilot bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 600x650 window and play there.

Sprites are read from --assets as PNG files named space, title, ship,
alien, rock, bullet, alienBullet and gameOver. Any missing sprite is drawn
as a colored rectangle.

Controls:
  Left/A, Right/D  - Move ship (hold to repeat)
  Space/Up         - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit

Examples:
  invaders window
  invaders window --assets ./assets
  invaders window --autopilot --seed 3`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory containing PNG sprites")
	windowCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot play")
}

func runWindow(cmd *cobra.Command, args []string) error {
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

	return window.Run(window.Options{
		Config:    cfg,
		Seed:      seed,
		AssetsDir: flagAssets,
		Autopilot: flagAutopilot,
		Logger:    logger,
	})
}
