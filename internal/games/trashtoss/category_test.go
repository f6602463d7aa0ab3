package trashtoss

import (
	"testing"

	"github.com/vovakirdan/trash-toss/internal/config"
	"github.com/vovakirdan/trash-toss/internal/core"
)

func TestMaterials(t *testing.T) {
	tests := []struct {
		cat    Category
		drag   float64
		bounce float64
		radius float64
		points int
	}{
		{Paper, 0.02, 0.3, 12, 1},
		{Snack, 0.01, 0.5, 10, 2},
		{MouseToy, 0.005, 0.7, 15, 5},
		{Confetti, 0.05, 0.2, 8, 3},
	}

	for _, tt := range tests {
		m := tt.cat.Material()
		if m.Drag != tt.drag || m.Bounce != tt.bounce || m.Radius != tt.radius || m.Points != tt.points {
			t.Errorf("%v material = %+v", tt.cat, m)
		}
	}
}

func TestDrawCategory(t *testing.T) {
	w := config.DefaultTossConfig().Weights

	tests := []struct {
		draw float64
		want Category
	}{
		{0, Paper},
		{0.4, Paper},
		{0.41, Snack},
		{0.75, Snack},
		{0.76, MouseToy},
		{0.999, MouseToy},
	}

	for _, tt := range tests {
		if got := drawCategory(constRand(tt.draw), w); got != tt.want {
			t.Errorf("drawCategory(%v) = %v, want %v", tt.draw, got, tt.want)
		}
	}
}

func TestDrawCategoryInvalidWeightsFallBack(t *testing.T) {
	if got := drawCategory(constRand(0.9), config.TossWeights{}); got != MouseToy {
		t.Errorf("drawCategory() with zero weights = %v, want mouse", got)
	}
}

func TestDrawCategoryNeverConfetti(t *testing.T) {
	rng := core.NewRand(42)
	w := config.DefaultTossConfig().Weights
	for i := 0; i < 1000; i++ {
		if drawCategory(rng, w) == Confetti {
			t.Fatal("confetti drawn by the regular rotation")
		}
	}
}

func TestProjectileLaunchOnce(t *testing.T) {
	p := NewProjectile(Snack, core.V(0, 0), core.ColorBrown)
	if !p.Launch(core.V(1, 2)) {
		t.Fatal("first Launch() = false")
	}
	if p.Launch(core.V(9, 9)) {
		t.Error("second Launch() should fail")
	}
	if p.Vel() != core.V(1, 2) {
		t.Errorf("Vel() = %v", p.Vel())
	}
}

func TestProjectileDeadIsFrozen(t *testing.T) {
	r := newTestRound(t, constRand(0))
	p := r.Active()
	p.Launch(core.V(4, -4))
	p.kill()

	pos, vel := p.Pos(), p.Vel()
	for i := 0; i < 10; i++ {
		p.step(r.Engine())
	}
	p.redirect(core.V(100, 100))

	if p.Pos() != pos || p.Vel() != vel {
		t.Errorf("dead item moved: %v %v", p.Pos(), p.Vel())
	}
	if !p.Dead() || p.InFlight() {
		t.Error("dead item came back to life")
	}
}

func TestCategoryString(t *testing.T) {
	names := map[Category]string{Paper: "paper", Snack: "snack", MouseToy: "mouse", Confetti: "confetti"}
	for c, want := range names {
		if c.String() != want {
			t.Errorf("String() = %q, want %q", c.String(), want)
		}
	}
}
