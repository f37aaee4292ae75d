package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the same way the games do and print it as YAML.

Search order: --config, ~/.arcade/configs/invaders.yaml,
./configs/invaders.yaml, then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	data, err := config.MarshalInvaders(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(data))
	return nil
}
