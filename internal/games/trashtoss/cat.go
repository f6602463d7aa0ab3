package trashtoss

import (
	"github.com/vovakirdan/trash-toss/internal/config"
	"github.com/vovakirdan/trash-toss/internal/core"
)

// Cat wakes up when a mouse toy is thrown and, for a limited number of
// ticks, may swat the toy in a new direction when it comes close.
type Cat struct {
	pos       core.Vec2
	radius    float64
	maxActive int
	chance    float64
	spread    float64
	minForce  float64
	maxForce  float64
	rng       core.Rand

	active  bool
	elapsed int
}

// NewCat places a cat at pos using the tuning from cfg.
func NewCat(pos core.Vec2, cfg config.TossCat, rng core.Rand) *Cat {
	return &Cat{
		pos:       pos,
		radius:    cfg.Radius,
		maxActive: cfg.ActiveTicks,
		chance:    cfg.Chance,
		spread:    cfg.Spread,
		minForce:  cfg.MinForce,
		maxForce:  cfg.MaxForce,
		rng:       rng,
	}
}

// Activate wakes the cat and restarts its active window.
func (c *Cat) Activate() {
	c.active = true
	c.elapsed = 0
}

// Deactivate puts the cat back to sleep.
func (c *Cat) Deactivate() {
	c.active = false
	c.elapsed = 0
}

// Tick advances the active window; the cat sleeps again once it expires.
func (c *Cat) Tick() {
	if !c.active {
		return
	}
	c.elapsed++
	if c.elapsed >= c.maxActive {
		c.Deactivate()
	}
}

// Active reports whether the cat is awake.
func (c *Cat) Active() bool { return c.active }

// Elapsed returns the ticks spent awake in the current window.
func (c *Cat) Elapsed() int { return c.elapsed }

// Pos returns the cat's position.
func (c *Cat) Pos() core.Vec2 { return c.pos }

// Radius returns the swat reach.
func (c *Cat) Radius() float64 { return c.radius }

// InReach reports whether a point is within swat reach of an awake cat.
func (c *Cat) InReach(p core.Vec2) bool {
	return c.active && c.pos.Dist(p) <= c.radius
}

// TryDeflect swats an eligible projectile. Only a live, thrown mouse toy in
// reach of an awake cat is eligible, and then the swat lands with the
// configured chance. A successful swat replaces the projectile's velocity
// with one pointing away from the cat, with a random angle offset and a
// random speed. Returns whether the projectile was deflected.
func (c *Cat) TryDeflect(p *Projectile) bool {
	if p == nil || !p.InFlight() || p.Category() != MouseToy {
		return false
	}
	if !c.InReach(p.Pos()) {
		return false
	}
	if c.rng.Float64() > c.chance {
		return false
	}

	angle := p.Pos().Sub(c.pos).Angle()
	angle += (c.rng.Float64() - 0.5) * c.spread
	force := c.minForce + c.rng.Float64()*(c.maxForce-c.minForce)

	p.redirect(core.FromAngle(angle, force))
	return true
}
