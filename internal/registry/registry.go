// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so hosts (terminal, SSH,
// browser) can instantiate them by ID without importing them directly.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/trash-toss/internal/core"
)

// Game is the interface a host drives. Games contain pure, tick-stepped
// logic with no host dependencies (no Bubble Tea, no HTTP). The host owns
// input mapping, timing and presentation.
type Game interface {
	// ID returns a unique identifier, used on the command line and as the
	// score history key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds the game world from scratch. Hosts call it once per
	// session; in-game restarts go through ActionRestart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, best score, phase and pause status.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line blurb for
// listings.
type Describer interface {
	Description() string
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
	Default     bool
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu        sync.RWMutex
	entries   = make(map[string]entry)
	defaultID string
)

// Register adds a game factory. It is meant for init() functions and
// panics on a duplicate ID. The factory is called once to read the title
// and description.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	entries[id] = entry{info: info, factory: f}
}

// RegisterDefault registers a game and makes it the one hosts start when
// no ID is given. The last call wins.
func RegisterDefault(id string, f Factory) {
	Register(id, f)

	mu.Lock()
	defaultID = id
	mu.Unlock()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		info := e.info
		info.Default = id == defaultID
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Default returns the game registered with RegisterDefault, or the first
// by ID when none was.
func Default() (string, bool) {
	mu.RLock()
	id := defaultID
	mu.RUnlock()
	if id != "" {
		return id, true
	}

	games := List()
	if len(games) == 0 {
		return "", false
	}
	return games[0].ID, true
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
