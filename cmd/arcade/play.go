package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/games/asteroids"
	"github.com/vovakirdan/arcade-sim/internal/games/breakout"
	"github.com/vovakirdan/arcade-sim/internal/platform/tui"
	"github.com/vovakirdan/arcade-sim/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Up/W       - Thrust (asteroids)
  Left/A     - Rotate left / paddle left
  Right/D    - Rotate right / paddle right
  Space      - Fire (asteroids)
  P/Esc      - Pause
  R/Enter    - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  arcade play asteroids
  arcade play breakout --seed 7
  arcade play asteroids --config ./my-asteroids.yaml
  arcade menu --breakout-config ./my-breakout.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

var flagConfig string

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a config YAML for the game being played")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		closeLogger()
		os.Exit(1)
	}

	if err := playGame(gameID, runtimeConfig(), configPathFor(gameID, flagConfig)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLogger()
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.ScaleByDelta = flagScaleByDelta
	return cfg
}

// configPathFor returns the custom config file for one game. An explicit
// path wins over the game's own --<game>-config flag.
func configPathFor(gameID, explicit string) string {
	if explicit != "" {
		return explicit
	}
	switch gameID {
	case "asteroids":
		return flagAsteroidsCfg
	case "breakout":
		return flagBreakoutCfg
	}
	return ""
}

// playGame runs one game until the player quits.
func playGame(gameID string, cfg core.RuntimeConfig, configPath string) error {
	// Set config path for games before creation
	switch gameID {
	case "asteroids":
		asteroids.SetConfigPath(configPath)
	case "breakout":
		breakout.SetConfigPath(configPath)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Debug("starting game", "game", gameID, "fps", cfg.TickRate, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	opts := tui.Options{
		ReleaseAfter: flagReleaseAfter,
		FixedSeed:    flagSeed != 0,
		Logger:       logger,
	}
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
