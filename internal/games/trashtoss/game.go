// Package trashtoss implements the trash toss game: drag the item, let go,
// and try to land it in the bin while the cat does its best to interfere.
package trashtoss

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/trash-toss/internal/config"
	"github.com/vovakirdan/trash-toss/internal/core"
	"github.com/vovakirdan/trash-toss/internal/registry"
)

// GameID is the registry identifier.
const GameID = "trashtoss"

var (
	defaultsMu   sync.RWMutex
	configPath   string
	defaultStore KV
	defaultLog   *log.Logger
)

// SetConfigPath sets the custom config path used by games created later.
func SetConfigPath(path string) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	configPath = path
}

// SetStore sets the best score store used by games created later.
func SetStore(kv KV) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultStore = kv
}

// SetLogger sets the logger used by games created later.
func SetLogger(l *log.Logger) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultLog = l
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithConfig uses cfg instead of loading the config file.
func WithConfig(cfg config.TossConfig) Option {
	return func(g *Game) { g.tossCfg = &cfg }
}

// WithStore persists the best score in kv.
func WithStore(kv KV) Option {
	return func(g *Game) { g.store = kv }
}

// WithLogger logs game events to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game adapts a Round to the arcade platform: it maps pointer input through
// the aim handler, steps the round once per tick and renders it.
type Game struct {
	round    *Round
	aim      *Aim
	viewport Viewport
	paused   bool
	last     TickReport

	runtime core.RuntimeConfig
	tossCfg *config.TossConfig
	store   KV
	logger  *log.Logger
}

// New creates a game. Reset must be called before the first Step.
func New(opts ...Option) *Game {
	defaultsMu.RLock()
	g := &Game{store: defaultStore, logger: defaultLog}
	defaultsMu.RUnlock()

	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Trash Toss"
}

// Description is the one-line blurb shown by game listings.
func (g *Game) Description() string {
	return "Drag and throw trash into the bin; the mouse toy wakes the cat"
}

// Reset builds a fresh world from the config and seeds the randomness.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	tc := g.loadConfig()
	rng := core.NewRand(cfg.Seed)
	scores := NewScoreKeeper(g.store, g.logger)

	g.round = NewRound(tc, rng, scores, g.logger)
	g.aim = NewAim(tc.Throw)
	g.viewport = NewViewport(cfg.ScreenW, cfg.ScreenH, tc.World.Width, tc.World.Height)
	g.paused = false
	g.last = TickReport{}
}

func (g *Game) loadConfig() config.TossConfig {
	if g.tossCfg != nil {
		return *g.tossCfg
	}

	defaultsMu.RLock()
	path := configPath
	defaultsMu.RUnlock()

	tc, err := config.Load(path)
	if err != nil {
		g.logger.Warn("using default config", "path", path, "err", err)
		return config.DefaultTossConfig()
	}
	return tc
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Restart also unpauses, so it is honoured before the pause check.
	if in.Has(core.ActionRestart) {
		g.aim.Cancel()
		g.round.Reset()
		g.paused = false
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, ev := range in.Pointers {
		pos := core.V(ev.X, ev.Y)
		if !ev.World {
			pos = g.viewport.ToWorld(int(ev.X), int(ev.Y))
		}
		g.Pointer(ev.Kind, pos)
	}

	if v, ok := g.aim.Take(); ok {
		g.round.Launch(v)
	}

	g.last = g.round.Tick()
	return core.StepResult{State: g.State()}
}

// Pointer feeds one pointer event in world coordinates to the aim handler.
func (g *Game) Pointer(kind core.PointerKind, pos core.Vec2) {
	switch kind {
	case core.PointerDown:
		g.aim.PointerDown(pos, g.round.Active())
	case core.PointerMove:
		g.aim.PointerMove(pos)
	case core.PointerUp:
		g.aim.PointerUp()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.round.Phase().String()
	if g.paused {
		phase = "paused"
	}
	return core.GameState{
		Score:     g.round.Scores().Current(),
		BestScore: g.round.Scores().Best(),
		Phase:     phase,
		Paused:    g.paused,
	}
}

// Round returns the underlying round, the control surface for resets.
func (g *Game) Round() *Round { return g.round }

// Binned returns how many items went into the bin this run.
func (g *Game) Binned() int { return g.round.Binned() }

// LastTick returns the report of the most recent tick.
func (g *Game) LastTick() TickReport { return g.last }

// SetViewport maps terminal cells for a cols x rows screen.
func (g *Game) SetViewport(cols, rows int) {
	cfg := g.round.Config()
	g.viewport = NewViewport(cols, rows, cfg.World.Width, cfg.World.Height)
}

func init() {
	registry.RegisterDefault(GameID, func() registry.Game {
		return New()
	})
}
