package trashtoss

import (
	"math"
	"testing"

	"github.com/vovakirdan/trash-toss/internal/config"
	"github.com/vovakirdan/trash-toss/internal/core"
)

func newTestBurst(rng core.Rand) *Burst {
	return NewBurst(config.DefaultTossConfig().Confetti, rng)
}

func TestBurstTriggerRanges(t *testing.T) {
	for _, draw := range []float64{0, 0.25, 0.5, 0.999} {
		b := newTestBurst(constRand(draw))
		b.Trigger(core.V(10, 20), 5)

		if b.Len() != 5 {
			t.Fatalf("Len() = %d, want 5", b.Len())
		}
		for _, p := range b.Particles() {
			switch {
			case p.Pos != core.V(10, 20):
				t.Errorf("draw %v: Pos = %v", draw, p.Pos)
			case p.Vel.X < -4 || p.Vel.X > 4:
				t.Errorf("draw %v: Vel.X = %v", draw, p.Vel.X)
			case p.Vel.Y < -7 || p.Vel.Y > -2:
				t.Errorf("draw %v: Vel.Y = %v", draw, p.Vel.Y)
			case p.Size < 2 || p.Size >= 6:
				t.Errorf("draw %v: Size = %v", draw, p.Size)
			case p.Decay < 0.01 || p.Decay >= 0.03:
				t.Errorf("draw %v: Decay = %v", draw, p.Decay)
			case p.Spin < -0.1 || p.Spin > 0.1:
				t.Errorf("draw %v: Spin = %v", draw, p.Spin)
			case p.Life != 1:
				t.Errorf("draw %v: Life = %v", draw, p.Life)
			}
		}
	}
}

func TestBurstTick(t *testing.T) {
	b := newTestBurst(constRand(0.5))
	b.Trigger(core.V(100, 100), 1)
	b.Tick()

	p := b.Particles()[0]
	// Launch velocity (0, -4.5), moved first, then gravity.
	if p.Pos != core.V(100, 95.5) {
		t.Errorf("Pos = %v, want (100, 95.5)", p.Pos)
	}
	if math.Abs(p.Vel.Y-(-4.2)) > 1e-9 {
		t.Errorf("Vel.Y = %v, want -4.2", p.Vel.Y)
	}
	if math.Abs(p.Life-0.98) > 1e-9 {
		t.Errorf("Life = %v, want 0.98", p.Life)
	}
}

func TestBurstFinishes(t *testing.T) {
	b := newTestBurst(constRand(0.5)) // decay 0.02 for every particle
	if !b.Finished() {
		t.Error("fresh layer should be finished")
	}

	b.Trigger(core.V(0, 0), 40)
	if b.Finished() || !b.Active() {
		t.Fatal("triggered layer should be running")
	}

	ticks := 0
	for !b.Finished() && ticks < 100 {
		b.Tick()
		ticks++
	}
	if !b.Finished() {
		t.Fatal("burst never finished")
	}
	if ticks < 49 || ticks > 51 {
		t.Errorf("finished after %d ticks, want about 50", ticks)
	}
}

func TestBurstEmptyTriggerNotFinishedUntilTick(t *testing.T) {
	b := newTestBurst(constRand(0))
	b.Trigger(core.V(0, 0), 0)
	if b.Finished() {
		t.Fatal("freshly triggered layer read as finished")
	}
	b.Tick()
	if !b.Finished() {
		t.Error("empty layer should finish after a tick")
	}
}

func TestBurstClear(t *testing.T) {
	b := newTestBurst(constRand(0))
	b.Trigger(core.V(0, 0), 10)
	b.Clear()
	if !b.Finished() || b.Len() != 0 {
		t.Error("Clear() should finish the layer")
	}
}

func TestBurstPaletteColors(t *testing.T) {
	rng := &seqRand{floats: []float64{0.3}, ints: []int{0, 3, 7}}
	b := newTestBurst(rng)
	b.Trigger(core.V(0, 0), 3)

	want := []core.Color{confettiPalette[0], confettiPalette[3], confettiPalette[7]}
	for i, p := range b.Particles() {
		if p.Color != want[i] {
			t.Errorf("particle %d color = %v, want %v", i, p.Color, want[i])
		}
	}
}
