package breakout

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a World to the registry.Game contract.
type Game struct {
	world   *World
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		log.Warn("using default config", "game", g.ID(), "error", err)
		cfg = config.DefaultBreakoutConfig()
	}
	g.cfg = cfg
	g.world = NewWorld(cfg, runtime.ScaleByDelta)
}

// Step advances the game by one frame. After game over it only reports state.
func (g *Game) Step(frame core.Frame) core.StepResult {
	events := g.world.Step(frame)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Destroyed(),
		GameOver: g.world.Over(),
	}
}

// StateHash returns the snapshot hash of the current session.
func (g *Game) StateHash() uint64 {
	snap := g.world.Snapshot()
	return snap.Hash()
}

// World exposes the session state.
func (g *Game) World() *World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
