package trashtoss

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/trash-toss/internal/config"
	"github.com/vovakirdan/trash-toss/internal/core"
	"github.com/vovakirdan/trash-toss/internal/physics"
)

// Phase is the round state.
type Phase int

const (
	PhasePlaying      Phase = iota // item ready, waiting for a throw
	PhaseAwaitingNext              // item thrown, next one spawns after the wait
	PhaseCelebrating               // item binned, waiting for the confetti to finish
)

// String returns the label shown in the HUD and snapshots.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseAwaitingNext:
		return "waiting"
	case PhaseCelebrating:
		return "celebrating"
	default:
		return "unknown"
	}
}

// MarshalText encodes the phase by label.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// TickReport describes what happened during one tick.
type TickReport struct {
	Contact   physics.Contact
	Settled   bool // the item came to rest and joined the pile
	Deflected bool // the cat swatted the item
	Scored    int  // points awarded, 0 when nothing was binned
	Spawned   bool // a new item is ready
	Discarded bool // an item still in play was dropped when the wait ran out
}

// Round owns the simulation: the active item, the cat, the bin, the
// celebration effect and the settled pile. It is stepped once per tick and
// is the only thing that mutates them.
type Round struct {
	cfg    config.TossConfig
	engine *physics.Engine
	rng    core.Rand
	logger *log.Logger

	cat    *Cat
	bin    Bin
	burst  *Burst
	scores *ScoreKeeper

	phase   Phase
	timer   int
	active  *Projectile
	next    Category
	settled []Settled
	binned  int
	tick    uint64
}

// NewRound builds a round from cfg with the first item ready to throw.
func NewRound(cfg config.TossConfig, rng core.Rand, scores *ScoreKeeper, logger *log.Logger) *Round {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if scores == nil {
		scores = NewScoreKeeper(nil, logger)
	}

	w, h := cfg.World.Width, cfg.World.Height
	engine := physics.NewEngineWithTuning(w, h, physics.Tuning{
		Gravity:         cfg.Physics.Gravity,
		GroundMargin:    cfg.Physics.GroundMargin,
		WallRestitution: cfg.Physics.WallRestitution,
		GroundFriction:  cfg.Physics.GroundFriction,
		RestVY:          cfg.Physics.RestVY,
		RestVX:          cfg.Physics.RestVX,
	})

	r := &Round{
		cfg:    cfg,
		engine: engine,
		rng:    rng,
		logger: logger,
		cat:    NewCat(core.V(w-cfg.Cat.OffsetX, h-cfg.Cat.OffsetY), cfg.Cat, rng),
		bin:    NewBin(core.V(w-cfg.Bin.OffsetX, h-cfg.Physics.GroundMargin), cfg.Bin),
		burst:  NewBurst(cfg.Confetti, rng),
		scores: scores,
	}
	r.next = drawCategory(rng, cfg.Weights)
	r.spawn(false)
	return r
}

// Launch throws the active item with velocity v. It only succeeds while an
// unthrown item is ready; throwing a mouse toy wakes the cat.
func (r *Round) Launch(v core.Vec2) bool {
	if r.active == nil || !r.active.Launch(v) {
		return false
	}

	if r.active.Category() == MouseToy {
		r.cat.Activate()
	}
	r.phase = PhaseAwaitingNext
	r.timer = 0

	r.logger.Debug("item thrown", "category", r.active.Category(), "vx", v.X, "vy", v.Y)
	return true
}

// Tick advances the round by one step: physics, cat timer, confetti,
// collisions, then the phase machine.
func (r *Round) Tick() TickReport {
	var rep TickReport
	r.tick++

	if r.active != nil && r.active.InFlight() {
		rep.Contact = r.active.step(r.engine)
		if r.active.Grounded() {
			r.settled = append(r.settled, r.active.settle())
			rep.Settled = true
		}
	}

	r.cat.Tick()
	r.burst.Tick()
	r.collide(&rep)

	switch r.phase {
	case PhaseAwaitingNext:
		if (r.active.Dead() || r.outOfBounds(r.active.Pos())) && r.timer < r.cfg.Round.WaitTicks {
			r.timer = r.cfg.Round.WaitTicks
			break
		}
		r.timer++
		if r.timer >= r.cfg.Round.WaitTicks {
			if !r.active.Dead() {
				r.active.kill()
				rep.Discarded = true
			}
			r.spawn(false)
			r.phase = PhasePlaying
			r.timer = 0
			rep.Spawned = true
		}

	case PhaseCelebrating:
		if r.burst.Finished() {
			r.spawn(true)
			r.phase = PhasePlaying
			rep.Spawned = true
		}
	}

	return rep
}

// collide runs the cat swat and then the bin check against the position
// produced by this tick's physics step. A swat may replace a bounce
// response from the same step.
func (r *Round) collide(rep *TickReport) {
	p := r.active
	if p == nil || !p.InFlight() {
		return
	}

	if r.cat.TryDeflect(p) {
		rep.Deflected = true
		r.logger.Debug("cat swatted the toy", "x", p.Pos().X, "y", p.Pos().Y)
	}

	if physics.CheckTargetCollision(&p.body, r.bin.Mouth()) {
		points := p.Points()
		r.scores.Add(points)
		p.kill()
		r.binned++
		r.burst.Trigger(r.bin.MouthCenter(), r.cfg.Round.BurstCount)
		r.timer = 0
		r.phase = PhaseCelebrating
		rep.Scored = points

		r.logger.Info("item binned", "category", p.Category(), "points", points, "score", r.scores.Current())
	}
}

func (r *Round) outOfBounds(p core.Vec2) bool {
	m := r.cfg.Round.OutOfBoundsMargin
	return p.X < -m || p.X > r.cfg.World.Width+m || p.Y > r.cfg.World.Height+m
}

// spawn places a fresh item at the throw point. A forced spawn is always
// confetti with a random palette color; every spawn draws the next regular
// category.
func (r *Round) spawn(forceConfetti bool) {
	pos := core.V(r.cfg.Throw.SpawnX, r.cfg.World.Height-r.cfg.Throw.SpawnOffsetY)

	if forceConfetti {
		color := confettiPalette[r.rng.Intn(len(confettiPalette))]
		r.active = NewProjectile(Confetti, pos, color)
	} else {
		cat := r.next
		r.active = NewProjectile(cat, pos, cat.Material().Color)
	}
	r.next = drawCategory(r.rng, r.cfg.Weights)
}

// Reset starts over: empty pile, no confetti, sleeping cat, zero score and a
// fresh item. The best score survives.
func (r *Round) Reset() {
	r.settled = nil
	r.burst.Clear()
	r.cat.Deactivate()
	r.scores.Reset()
	r.phase = PhasePlaying
	r.timer = 0
	r.binned = 0
	r.spawn(false)
	r.logger.Debug("round reset")
}

// Phase returns the current phase.
func (r *Round) Phase() Phase { return r.phase }

// Timer returns the ticks spent in the current wait.
func (r *Round) Timer() int { return r.timer }

// Active returns the item in play.
func (r *Round) Active() *Projectile { return r.active }

// Next returns the category the next regular spawn will use.
func (r *Round) Next() Category { return r.next }

// Settled returns the pile of items that came to rest.
func (r *Round) Settled() []Settled { return r.settled }

// Binned returns how many items went into the bin this run.
func (r *Round) Binned() int { return r.binned }

// Ticks returns the number of ticks stepped since creation.
func (r *Round) Ticks() uint64 { return r.tick }

// Cat returns the deflector.
func (r *Round) Cat() *Cat { return r.cat }

// Bin returns the target.
func (r *Round) Bin() Bin { return r.bin }

// Burst returns the celebration effect.
func (r *Round) Burst() *Burst { return r.burst }

// Scores returns the score keeper.
func (r *Round) Scores() *ScoreKeeper { return r.scores }

// Engine returns the physics engine.
func (r *Round) Engine() *physics.Engine { return r.engine }

// Config returns the configuration the round was built from.
func (r *Round) Config() config.TossConfig { return r.cfg }
