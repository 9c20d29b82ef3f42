// polyroids is a terminal arcade shooter: fly a ship, shoot polygon
// asteroids, collect power-ups.
//
// Usage:
//
//	polyroids play     - Play in this terminal
//	polyroids serve    - Host the game over SSH
//	polyroids config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible games
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tomz197/polyroids/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "polyroids",
	Short: "Polyroids - shoot polygon asteroids in your terminal",
	Long: `Polyroids is a terminal asteroids shooter. Asteroids are triangles,
squares and pentagons; big ones split when shot.

Controls:
  W/A/S/D, arrows - Move
  Space           - Fire
  Tab             - Switch weapon
  1-4             - Asteroid shape: triangle, square, pentagon, random
  R               - Restart after dying
  Q/Ctrl+C        - Quit

Examples:
  polyroids play
  polyroids play --seed 42
  polyroids serve --port 2222
  polyroids config > my-config.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}

// loadConfig resolves the configuration from --config and the search path.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
