package physics

import (
	"iter"

	"github.com/vovakirdan/trash-toss/internal/core"
)

// Trajectory predicts up to steps positions of a body launched from origin
// with vel, ignoring collision response. The sequence stops early once the
// path reaches the ground (yielding the landing point clamped to the ground)
// or leaves the playfield horizontally. Each range over the result restarts
// from origin.
func (e *Engine) Trajectory(origin, vel core.Vec2, drag float64, steps int) iter.Seq[core.Vec2] {
	drag = effectiveDrag(drag)
	return func(yield func(core.Vec2) bool) {
		pos, v := origin, vel
		for i := 0; i < steps; i++ {
			if !yield(pos) {
				return
			}

			v = e.accelerate(v, drag, 1)
			pos = pos.Add(v)

			if pos.Y >= e.groundY {
				yield(core.V(pos.X, e.groundY))
				return
			}
			if pos.X < 0 || pos.X > e.width {
				return
			}
		}
	}
}
