// Package registry maps game ids to constructors. Each game package calls
// Register from init, so importing it for side effects is enough to make
// the game playable from the CLI and the menu.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// Game is one frame-driven simulation. The platform owns time and input:
// it hands the game a core.Frame per tick and draws whatever Render leaves
// in the screen buffer. Games never import the terminal layer.
type Game interface {
	// ID is the stable name used on the command line, e.g. "asteroids".
	ID() string

	// Title is shown in listings and the menu.
	Title() string

	// Reset discards the session and builds a new one from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances exactly one frame. Input in the frame is consumed
	// before anything moves; the result carries this frame's events.
	Step(frame core.Frame) core.StepResult

	// Render draws into a cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a game that has not been Reset yet.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register makes a game available under id. Registering the same id twice
// is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		games = append(games, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(games, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return games
}

// Create builds a new, independent instance of the game named id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
