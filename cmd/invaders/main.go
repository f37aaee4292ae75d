// invaders is a Space Invaders game for the terminal and the desktop.
//
// Usage:
//
//	invaders list              - List available games
//	invaders play [game]       - Play in the terminal (menu when no game given)
//	invaders window            - Play in a desktop window
//	invaders simulate          - Run the autopilot headless and print a summary
//	invaders config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set host frame rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom config YAML
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders for your terminal",
	Long: `Space Invaders: shoot down the alien formation from behind a rock
field while dodging their volleys.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run the autopilot without a display
  config    - Print the effective configuration

Examples:
  invaders play
  invaders play invaders_autopilot
  invaders window --assets ./assets
  invaders simulate --seed 42 --ticks 36000
  invaders config > my-invaders.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate; the simulation step stays fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the run logger. Logs go to --log-file when set and to
// fallback otherwise. The returned close function releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() } //nolint:errcheck // best-effort close on exit
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	})
	return logger.With("run", uuid.NewString()), closeFn, nil
}

// loadConfig resolves the game configuration, applies --fps and makes it
// the default for registry-created games.
func loadConfig(cmd *cobra.Command, logger *log.Logger) (config.InvadersConfig, string, error) {
	cfg, source, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return config.InvadersConfig{}, source, err
	}
	if cmd.Flags().Changed("fps") {
		if flagFPS <= 0 {
			return config.InvadersConfig{}, source, fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
		}
		cfg.Scene.TickRate = flagFPS
	}

	invaders.SetDefaultConfig(cfg)
	logger.Debug("config loaded", "source", source, "tick_rate", cfg.Scene.TickRate, "dt", cfg.Scene.TickDelta())
	return cfg, source, nil
}
