// Package physics implements the projectile integrator shared by every thrown
// object: gravity, anisotropic air drag, ground bounce with a rest threshold
// and lossy side walls. It is stepped once per tick, never by wall-clock time.
package physics

import (
	"math"

	"github.com/vovakirdan/trash-toss/internal/core"
)

// Body is the kinematic state the engine integrates.
type Body struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Drag     float64 // air resistance per tick, applied fully to X and halved for Y
	Bounce   float64 // fraction of vertical speed kept on a ground hit, in [0,1]
	Thrown   bool
	Grounded bool
}

// Circle is a collision disc.
type Circle struct {
	Center core.Vec2
	Radius float64
}

// Contact reports which boundaries a step touched.
type Contact uint8

const (
	ContactNone   Contact = 0
	ContactGround Contact = 1 << iota
	ContactWall
	ContactRest // the ground hit settled the body
)

// Has reports whether c includes flag.
func (c Contact) Has(flag Contact) bool {
	return c&flag != 0
}

// Engine integrates bodies inside a width x height playfield.
type Engine struct {
	width   float64
	height  float64
	groundY float64
	tuning  Tuning
}

// NewEngine creates an engine with the default tuning.
func NewEngine(width, height float64) *Engine {
	return NewEngineWithTuning(width, height, DefaultTuning())
}

// NewEngineWithTuning creates an engine with custom constants.
func NewEngineWithTuning(width, height float64, t Tuning) *Engine {
	return &Engine{
		width:   width,
		height:  height,
		groundY: height - t.GroundMargin,
		tuning:  t,
	}
}

// Width returns the playfield width.
func (e *Engine) Width() float64 { return e.width }

// Height returns the playfield height.
func (e *Engine) Height() float64 { return e.height }

// GroundY returns the y coordinate of the ground plane.
func (e *Engine) GroundY() float64 { return e.groundY }

// Gravity returns the per-tick downward acceleration.
func (e *Engine) Gravity() float64 { return e.tuning.Gravity }

// Integrate advances b by dt ticks. Bodies that are not thrown or already
// grounded are left untouched.
func (e *Engine) Integrate(b *Body, dt float64) Contact {
	if !b.Thrown || b.Grounded {
		return ContactNone
	}

	drag := effectiveDrag(b.Drag)
	b.Vel = e.accelerate(b.Vel, drag, dt)
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	contact := ContactNone

	floor := e.groundY - b.Radius
	if b.Pos.Y >= floor {
		contact |= ContactGround
		b.Pos.Y = floor
		b.Vel.Y *= -b.Bounce
		b.Vel.X *= e.tuning.GroundFriction

		if math.Abs(b.Vel.Y) < e.tuning.RestVY && math.Abs(b.Vel.X) < e.tuning.RestVX {
			b.Vel = core.Vec2{}
			b.Grounded = true
			contact |= ContactRest
		}
	}

	if b.Pos.X < b.Radius {
		contact |= ContactWall
		b.Pos.X = b.Radius
		b.Vel.X *= -e.tuning.WallRestitution
	} else if b.Pos.X > e.width-b.Radius {
		contact |= ContactWall
		b.Pos.X = e.width - b.Radius
		b.Vel.X *= -e.tuning.WallRestitution
	}

	return contact
}

// accelerate applies gravity then drag. Vertical drag is half the horizontal
// rate, so lateral speed bleeds off faster than fall speed.
func (e *Engine) accelerate(v core.Vec2, drag, dt float64) core.Vec2 {
	v.Y += e.tuning.Gravity * dt
	v.X *= 1 - drag
	v.Y *= 1 - drag*0.5
	return v
}

func effectiveDrag(drag float64) float64 {
	if drag == 0 {
		return FallbackDrag
	}
	return drag
}

// CheckCircleCollision reports whether two discs overlap.
func CheckCircleCollision(a, b Circle) bool {
	return a.Center.Dist(b.Center) < a.Radius+b.Radius
}

// CheckTargetCollision reports whether the body's center is inside the mouth
// region. Bodies entirely above the mouth never register.
func CheckTargetCollision(b *Body, mouth core.RectF) bool {
	if b.Pos.Y+b.Radius < mouth.Top {
		return false
	}
	return mouth.ContainsOpen(b.Pos)
}

// LaunchVelocity scales a drag vector into a launch velocity.
func LaunchVelocity(drag core.Vec2, power float64) core.Vec2 {
	return drag.Scale(power)
}
