package trashtoss

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/trash-toss/internal/config"
	"github.com/vovakirdan/trash-toss/internal/core"
	"github.com/vovakirdan/trash-toss/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := New(WithConfig(config.DefaultTossConfig()), WithStore(NewMemoryKV()))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: seed})
	return g
}

func throwFrames() []core.InputFrame {
	frames := make([]core.InputFrame, 400)
	for i := range frames {
		frames[i] = core.NewInputFrame()
	}
	frames[5].AddPointer(core.PointerEvent{Kind: core.PointerDown, X: 100, Y: 400, World: true})
	frames[6].AddPointer(core.PointerEvent{Kind: core.PointerMove, X: 180, Y: 330, World: true})
	frames[7].AddPointer(core.PointerEvent{Kind: core.PointerMove, X: 250, Y: 300, World: true})
	frames[8].AddPointer(core.PointerEvent{Kind: core.PointerUp, World: true})
	frames[150].AddPointer(core.PointerEvent{Kind: core.PointerDown, X: 100, Y: 400, World: true})
	frames[151].AddPointer(core.PointerEvent{Kind: core.PointerMove, X: 300, Y: 320, World: true})
	frames[152].AddPointer(core.PointerEvent{Kind: core.PointerUp, World: true})
	return frames
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for _, in := range throwFrames() {
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("determinism failed:\n%+v\n%+v", s1, s2)
	}
	if s1.Tick != 400 {
		t.Errorf("Tick = %d, want 400", s1.Tick)
	}
}

func TestGameThrowFromPointer(t *testing.T) {
	g := newTestGame(1)
	frames := throwFrames()
	for _, in := range frames[:8] {
		g.Step(in)
	}
	if !g.aim.Dragging() {
		t.Fatal("expected a drag in progress")
	}
	if g.Snapshot().Aim == nil {
		t.Error("snapshot should carry the aim preview while dragging")
	}

	g.Step(frames[8])
	if g.Round().Phase() != PhaseAwaitingNext {
		t.Errorf("Phase() = %v, want waiting", g.Round().Phase())
	}
	if !g.Round().Active().Thrown() {
		t.Error("item should be thrown on release")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := g.Step(pause)
	if !res.State.Paused || res.State.Phase != "paused" {
		t.Fatalf("state = %+v, want paused", res.State)
	}

	before := g.Round().Ticks()
	g.Step(core.NewInputFrame())
	if g.Round().Ticks() != before {
		t.Error("paused game advanced")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(1)
	g.Round().Scores().Add(4)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart)

	if res.State.Score != 0 || res.State.BestScore != 4 {
		t.Errorf("state after restart = %+v", res.State)
	}
}

func TestGameRestartWhilePaused(t *testing.T) {
	g := newTestGame(1)
	g.Round().Scores().Add(7)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart)

	if res.State.Score != 0 {
		t.Errorf("score after restart = %d, want 0", res.State.Score)
	}
	if res.State.Paused || res.State.Phase != "playing" {
		t.Errorf("state after restart = %+v, want playing and unpaused", res.State)
	}
}

func TestGameClickDropsItem(t *testing.T) {
	g := newTestGame(1)
	center := g.Round().Active().Pos()

	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerDown, X: center.X, Y: center.Y, World: true})
	in.AddPointer(core.PointerEvent{Kind: core.PointerUp, X: center.X, Y: center.Y, World: true})
	g.Step(in)

	if !g.Round().Active().Thrown() {
		t.Error("a click on the item should drop it")
	}
	if g.Round().Phase() != PhaseAwaitingNext {
		t.Errorf("phase = %v, want %v", g.Round().Phase(), PhaseAwaitingNext)
	}
}

func TestGameCellPointerMapping(t *testing.T) {
	g := newTestGame(1)
	vp := NewViewport(80, 25, 800, 600)
	x, y := vp.ToCell(g.Round().Active().Pos())

	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerDown, X: float64(x), Y: float64(y)})
	g.Step(in)

	if !g.aim.Dragging() {
		t.Error("clicking the item's cell should grab it")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 25)
	g.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD row = %q", hud)
	}
	glyph := g.Round().Active().Category().Material().Glyph
	if !strings.ContainsRune(screen.String(), glyph) {
		t.Errorf("active item glyph %q not drawn", glyph)
	}
	if !strings.Contains(screen.String(), CatAsleep) {
		t.Error("cat not drawn")
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("trashtoss not registered")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Trash Toss" {
		t.Errorf("Title() = %q", g.Title())
	}
	if id, ok := registry.Default(); !ok || id != GameID {
		t.Errorf("Default() = %q, %v", id, ok)
	}
}
