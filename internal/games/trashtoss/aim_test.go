package trashtoss

import (
	"math"
	"testing"

	"github.com/vovakirdan/trash-toss/internal/config"
	"github.com/vovakirdan/trash-toss/internal/core"
	"github.com/vovakirdan/trash-toss/internal/physics"
)

func newTestAim() *Aim {
	return NewAim(config.DefaultTossConfig().Throw)
}

func TestAimGrabDistance(t *testing.T) {
	p := NewProjectile(Paper, core.V(100, 400), core.ColorWhite) // radius 12, slack 10

	tests := []struct {
		pos  core.Vec2
		want bool
	}{
		{core.V(100, 400), true},
		{core.V(122, 400), true},
		{core.V(122.5, 400), false},
		{core.V(100, 378), true},
	}

	for _, tt := range tests {
		a := newTestAim()
		if got := a.PointerDown(tt.pos, p); got != tt.want {
			t.Errorf("PointerDown(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestAimIgnoresThrownItem(t *testing.T) {
	p := NewProjectile(Paper, core.V(100, 400), core.ColorWhite)
	p.Launch(core.V(1, 1))

	a := newTestAim()
	if a.PointerDown(core.V(100, 400), p) {
		t.Error("grabbed a thrown item")
	}
	if a.PointerDown(core.V(100, 400), nil) {
		t.Error("grabbed a nil item")
	}
}

func TestAimReleasePostsVelocity(t *testing.T) {
	p := NewProjectile(Paper, core.V(100, 400), core.ColorWhite)
	a := newTestAim()

	a.PointerDown(core.V(100, 400), p)
	a.PointerMove(core.V(150, 380))
	a.PointerMove(core.V(200, 300))
	a.PointerUp()

	v, ok := a.Take()
	if !ok {
		t.Fatal("Take() found nothing after release")
	}
	if math.Abs(v.X-30) > 1e-9 || math.Abs(v.Y+30) > 1e-9 {
		t.Errorf("velocity = %v, want (30, -30)", v)
	}

	if _, ok := a.Take(); ok {
		t.Error("mailbox consumed twice")
	}
}

func TestAimMailboxOverwrites(t *testing.T) {
	p := NewProjectile(Paper, core.V(100, 400), core.ColorWhite)
	a := newTestAim()

	a.PointerDown(core.V(100, 400), p)
	a.PointerMove(core.V(110, 400))
	a.PointerUp()

	a.PointerDown(core.V(100, 400), p)
	a.PointerMove(core.V(100, 420))
	a.PointerUp()

	v, ok := a.Take()
	if !ok || v != physics.LaunchVelocity(core.V(0, 20), 0.3) {
		t.Errorf("Take() = %v, %v, want the latest drag", v, ok)
	}
}

func TestAimReleaseWithoutDrag(t *testing.T) {
	a := newTestAim()
	a.PointerMove(core.V(5, 5))
	a.PointerUp()
	if _, ok := a.Take(); ok {
		t.Error("release without a drag posted a velocity")
	}

	p := NewProjectile(Paper, core.V(100, 400), core.ColorWhite)
	a.PointerDown(core.V(100, 400), p)
	a.PointerUp()
	v, ok := a.Take()
	if !ok || v != (core.Vec2{}) {
		t.Errorf("click without movement: Take() = %v, %v, want a zero velocity", v, ok)
	}
}

func TestAimPowerRatio(t *testing.T) {
	p := NewProjectile(Paper, core.V(100, 400), core.ColorWhite)
	a := newTestAim()
	a.PointerDown(core.V(100, 400), p)

	a.PointerMove(core.V(200, 400))
	if got := a.PowerRatio(); got != 0.5 {
		t.Errorf("PowerRatio() = %v, want 0.5", got)
	}
	if PowerColor(a.PowerRatio()) != core.ColorYellow {
		t.Error("half power should be yellow")
	}

	a.PointerMove(core.V(500, 400))
	if got := a.PowerRatio(); got != 1 {
		t.Errorf("PowerRatio() = %v, want 1", got)
	}
}

func TestAimPreview(t *testing.T) {
	e := physics.NewEngine(800, 600)
	p := NewProjectile(Paper, core.V(100, 400), core.ColorWhite)
	a := newTestAim()

	n := 0
	for range a.Preview(e, p) {
		n++
	}
	if n != 0 {
		t.Errorf("preview without a drag yielded %d points", n)
	}

	a.PointerDown(core.V(100, 400), p)
	a.PointerMove(core.V(150, 350))

	var pts []core.Vec2
	for pt := range a.Preview(e, p) {
		pts = append(pts, pt)
	}
	if len(pts) == 0 || pts[0] != p.Pos() {
		t.Fatalf("preview should start at the item, got %v", pts)
	}
	if len(pts) > 30 {
		t.Errorf("preview has %d points, want at most 30", len(pts))
	}
}
