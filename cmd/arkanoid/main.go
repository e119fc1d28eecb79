// arkanoid plays the Arkanoid brick-breaker in the terminal.
//
// Usage:
//
//	arkanoid list              - List available variants
//	arkanoid play [variant]    - Play a variant (default: arkanoid)
//	arkanoid menu              - Start menu to pick a variant interactively
//	arkanoid serve             - Start SSH server for remote play
//	arkanoid scores [variant]  - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arkanoid/scores.db)
//	--log-file <path>  - Write simulation debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a terminal brick-breaker. Keep the ball in play with the
paddle, clear every tile and catch the falling pickups.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arkanoid play
  arkanoid play arkanoid_endless --difficulty hard
  arkanoid menu
  arkanoid serve --ssh :2222
  arkanoid scores arkanoid`,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs of the simulation to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging routes simulation logs to --log-file. The terminal belongs
// to the game, so nothing is logged by default.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	arkanoid.SetLogger(log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "arkanoid",
	}))
	return nil
}

// newRuntimeConfig builds the runtime config from the global flags and the
// terminal size.
func newRuntimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if width > 0 && height > 0 {
		cfg.ScreenW, cfg.ScreenH = width, height
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
