package trashtoss

import (
	"math"

	"github.com/vovakirdan/trash-toss/internal/config"
	"github.com/vovakirdan/trash-toss/internal/core"
)

// Particle is one piece of celebration confetti.
type Particle struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Life     float64 // 1 when spawned, removed at or below 0
	Decay    float64
	Rotation float64
	Spin     float64
	Size     float64
	Color    core.Color
}

// Burst is a time-limited confetti effect with its own simple integrator.
type Burst struct {
	particles []Particle
	active    bool
	gravity   float64
	damping   float64
	rng       core.Rand
}

// NewBurst creates an empty effect layer.
func NewBurst(cfg config.TossConfetti, rng core.Rand) *Burst {
	return &Burst{
		gravity: cfg.Gravity,
		damping: cfg.Damping,
		rng:     rng,
	}
}

// Trigger spawns count particles at pos flying up and outwards.
func (b *Burst) Trigger(pos core.Vec2, count int) {
	b.active = true
	for i := 0; i < count; i++ {
		b.particles = append(b.particles, Particle{
			Pos:      pos,
			Vel:      core.V((b.rng.Float64()-0.5)*8, -b.rng.Float64()*5-2),
			Life:     1,
			Decay:    b.rng.Float64()*0.02 + 0.01,
			Rotation: b.rng.Float64() * 2 * math.Pi,
			Spin:     (b.rng.Float64() - 0.5) * 0.2,
			Size:     b.rng.Float64()*4 + 2,
			Color:    confettiPalette[b.rng.Intn(len(confettiPalette))],
		})
	}
}

// Tick advances every particle by one tick and drops the expired ones.
func (b *Burst) Tick() {
	alive := b.particles[:0]
	for _, p := range b.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel.Y += b.gravity
		p.Vel.X *= b.damping
		p.Life -= p.Decay
		p.Rotation += p.Spin
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	b.particles = alive

	if len(b.particles) == 0 {
		b.active = false
	}
}

// Finished reports whether the effect is over: no particles left and no
// trigger waiting for its first tick.
func (b *Burst) Finished() bool {
	return !b.active && len(b.particles) == 0
}

// Active reports whether the effect is running.
func (b *Burst) Active() bool { return b.active }

// Len returns the number of live particles.
func (b *Burst) Len() int { return len(b.particles) }

// Particles returns a copy of the live particles.
func (b *Burst) Particles() []Particle {
	return append([]Particle(nil), b.particles...)
}

// Clear drops all particles immediately.
func (b *Burst) Clear() {
	b.particles = nil
	b.active = false
}
