package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. Without a game ID a menu lets you pick one.

Controls:
  Left/A, Right/D  - Move ship
  Space/Up         - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

The terminal owns the screen, so logs are discarded unless --log-file is set.

Examples:
  invaders play
  invaders play invaders
  invaders play invaders_autopilot --seed 7
  invaders play --log-file invaders.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	invCfg, _, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = invCfg.Scene.TickRate
	cfg.Seed = flagSeed

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
	} else {
		result, menuErr := tui.RunMenu(cfg)
		if menuErr != nil {
			return fmt.Errorf("menu: %w", menuErr)
		}
		if result.Quit {
			return nil
		}
		gameID = result.GameID
		cfg = result.Config
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'invaders list' to see available games)", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
