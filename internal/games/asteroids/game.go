package asteroids

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
	cfg     config.AsteroidsConfig
}

// New creates a new asteroids game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		log.Warn("using default config", "game", g.ID(), "error", err)
		cfg = config.DefaultAsteroidsConfig()
	}
	g.cfg = cfg
	g.world = NewWorld(cfg, runtime.Seed, runtime.ScaleByDelta)
}

// Step advances the session by one frame.
func (g *Game) Step(frame core.Frame) core.StepResult {
	events := g.world.Step(frame)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state. The shooter has no terminal condition.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.world.Destroyed()}
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
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
}
