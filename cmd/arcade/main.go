// arcade is a terminal arcade hosting two frame-driven games: an asteroids
// shooter and a breakout clone.
//
// Usage:
//
//	arcade list                - List available games
//	arcade play <game>         - Play a game
//	arcade menu                - Start menu to pick games interactively
//
// Global flags:
//
//	--fps <rate>               - Set tick rate (default: 60)
//	--seed <value>             - Set RNG seed for reproducible gameplay
//	--asteroids-config <path>  - Custom asteroids config YAML
//	--breakout-config <path>   - Custom breakout config YAML
//	--log-file <path>          - Write logs to a file (default: discarded)
//	--log-level <level>        - debug, info, warn or error (default: info)
//	--release-after <dur>      - Key release timeout (default: 500ms)
//	--scale-by-delta           - Scale motion by frame time
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-sim/internal/games/asteroids"
	_ "github.com/vovakirdan/arcade-sim/internal/games/breakout"
	"github.com/vovakirdan/arcade-sim/internal/platform/tui"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagAsteroidsCfg string
	flagBreakoutCfg  string
	flagLogFile      string
	flagLogLevel     string
	flagReleaseAfter time.Duration
	flagScaleByDelta bool
)

func main() {
	defer closeLogger()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeLogger()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - asteroids and breakout in your terminal",
	Long: `Arcade runs small frame-driven arcade games directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu

Examples:
  arcade list
  arcade play asteroids
  arcade play breakout --seed 42 --log-file arcade.log --log-level debug
  arcade menu --fps 30`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogger(flagLogFile, flagLogLevel)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagAsteroidsCfg, "asteroids-config", "", "Path to custom asteroids config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBreakoutCfg, "breakout-config", "", "Path to custom breakout config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (empty = discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().DurationVar(&flagReleaseAfter, "release-after", tui.DefaultReleaseAfter, "Treat a key as released after this long without repeats")
	rootCmd.PersistentFlags().BoolVar(&flagScaleByDelta, "scale-by-delta", false, "Scale per-frame motion by elapsed frame time")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}
