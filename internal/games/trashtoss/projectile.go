package trashtoss

import (
	"github.com/vovakirdan/trash-toss/internal/core"
	"github.com/vovakirdan/trash-toss/internal/physics"
)

// Projectile is the single item currently in play.
type Projectile struct {
	body     physics.Body
	category Category
	color    core.Color
	dead     bool
}

// Settled is the frozen record of an item that came to rest on the floor.
type Settled struct {
	Pos      core.Vec2
	Category Category
	Radius   float64
	Color    core.Color
}

// NewProjectile creates an unthrown item of the given category at pos.
func NewProjectile(cat Category, pos core.Vec2, color core.Color) *Projectile {
	m := cat.Material()
	return &Projectile{
		body: physics.Body{
			Pos:    pos,
			Radius: m.Radius,
			Drag:   m.Drag,
			Bounce: m.Bounce,
		},
		category: cat,
		color:    color,
	}
}

// Launch throws the item with velocity v. An item can be thrown only once;
// later calls return false and change nothing.
func (p *Projectile) Launch(v core.Vec2) bool {
	if p.body.Thrown || p.dead {
		return false
	}
	p.body.Vel = v
	p.body.Thrown = true
	return true
}

// Category returns the item's category.
func (p *Projectile) Category() Category { return p.category }

// Points returns the score awarded for binning this item.
func (p *Projectile) Points() int { return p.category.Material().Points }

// Pos returns the current position.
func (p *Projectile) Pos() core.Vec2 { return p.body.Pos }

// Vel returns the current velocity.
func (p *Projectile) Vel() core.Vec2 { return p.body.Vel }

// Radius returns the collision radius.
func (p *Projectile) Radius() float64 { return p.body.Radius }

// Drag returns the air resistance coefficient.
func (p *Projectile) Drag() float64 { return p.body.Drag }

// Color returns the draw color.
func (p *Projectile) Color() core.Color { return p.color }

// Thrown reports whether the item has been launched.
func (p *Projectile) Thrown() bool { return p.body.Thrown }

// Grounded reports whether the item came to rest on the floor.
func (p *Projectile) Grounded() bool { return p.body.Grounded }

// Dead reports whether the item is out of play. Dead never reverts.
func (p *Projectile) Dead() bool { return p.dead }

// InFlight reports whether the item is thrown and still simulated.
func (p *Projectile) InFlight() bool { return p.body.Thrown && !p.dead }

// step integrates one tick. Dead items are frozen.
func (p *Projectile) step(e *physics.Engine) physics.Contact {
	if p.dead {
		return physics.ContactNone
	}
	return e.Integrate(&p.body, 1)
}

// redirect overwrites the velocity of a live item.
func (p *Projectile) redirect(v core.Vec2) {
	if p.dead {
		return
	}
	p.body.Vel = v
}

// kill takes the item out of play.
func (p *Projectile) kill() {
	p.dead = true
}

// settle retires a grounded item into a static record.
func (p *Projectile) settle() Settled {
	p.dead = true
	return Settled{
		Pos:      p.body.Pos,
		Category: p.category,
		Radius:   p.body.Radius,
		Color:    p.color,
	}
}
