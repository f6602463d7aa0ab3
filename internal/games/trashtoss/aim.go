package trashtoss

import (
	"iter"
	"math"

	"github.com/vovakirdan/trash-toss/internal/config"
	"github.com/vovakirdan/trash-toss/internal/core"
	"github.com/vovakirdan/trash-toss/internal/physics"
)

// Aim turns a drag gesture on the ready item into a launch velocity.
// Releasing posts the velocity into a single-slot mailbox that the round
// consumes at most once; a newer release overwrites an unconsumed one.
type Aim struct {
	power    float64
	slack    float64
	maxPower float64
	steps    int

	dragging bool
	start    core.Vec2
	current  core.Vec2

	pending    core.Vec2
	hasPending bool
}

// NewAim creates an aim handler with the throw tuning from cfg.
func NewAim(cfg config.TossThrow) *Aim {
	return &Aim{
		power:    cfg.PowerMultiplier,
		slack:    cfg.GrabSlack,
		maxPower: cfg.MaxPower,
		steps:    cfg.PreviewSteps,
	}
}

// PointerDown starts a drag when pos is within grab distance of an unthrown
// item. Returns whether the item was grabbed.
func (a *Aim) PointerDown(pos core.Vec2, p *Projectile) bool {
	if p == nil || p.Thrown() || p.Dead() {
		return false
	}
	if pos.Dist(p.Pos()) > p.Radius()+a.slack {
		return false
	}

	a.dragging = true
	a.start = pos
	a.current = pos
	return true
}

// PointerMove updates the drag end point.
func (a *Aim) PointerMove(pos core.Vec2) {
	if a.dragging {
		a.current = pos
	}
}

// PointerUp ends the drag and posts the launch velocity. Releasing without
// an active drag posts nothing; a click without movement drops the item.
func (a *Aim) PointerUp() {
	if !a.dragging {
		return
	}
	a.dragging = false

	a.pending = physics.LaunchVelocity(a.current.Sub(a.start), a.power)
	a.hasPending = true
}

// Take consumes the posted velocity, if any.
func (a *Aim) Take() (core.Vec2, bool) {
	if !a.hasPending {
		return core.Vec2{}, false
	}
	v := a.pending
	a.pending = core.Vec2{}
	a.hasPending = false
	return v, true
}

// Cancel drops the drag and any unconsumed velocity.
func (a *Aim) Cancel() {
	a.dragging = false
	a.pending = core.Vec2{}
	a.hasPending = false
}

// Dragging reports whether a drag is in progress.
func (a *Aim) Dragging() bool { return a.dragging }

// Velocity returns the launch velocity the current drag would produce.
func (a *Aim) Velocity() core.Vec2 {
	return physics.LaunchVelocity(a.current.Sub(a.start), a.power)
}

// PowerRatio returns the drag length as a fraction of full power, capped at 1.
func (a *Aim) PowerRatio() float64 {
	if a.maxPower <= 0 {
		return 1
	}
	return math.Min(a.current.Sub(a.start).Len()/a.maxPower, 1)
}

// PowerColor returns the power bar color: green, then yellow from half
// power, then orange from 80%.
func PowerColor(ratio float64) core.Color {
	switch {
	case ratio < 0.5:
		return core.ColorGreen
	case ratio < 0.8:
		return core.ColorYellow
	default:
		return core.ColorOrange
	}
}

// Preview predicts the flight of p under the current drag. The sequence is
// empty when no drag is in progress.
func (a *Aim) Preview(e *physics.Engine, p *Projectile) iter.Seq[core.Vec2] {
	if !a.dragging || p == nil || p.Thrown() {
		return func(func(core.Vec2) bool) {}
	}
	return e.Trajectory(p.Pos(), a.Velocity(), p.Drag(), a.steps)
}
