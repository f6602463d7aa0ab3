package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trash-toss/internal/config"
	"github.com/vovakirdan/trash-toss/internal/core"
	"github.com/vovakirdan/trash-toss/internal/games/trashtoss"
)

type fakeGame struct {
	resets   int
	steps    []core.InputFrame
	score    int
	binned   int
	viewport [2]int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return core.GameState{Score: g.score} }
func (g *fakeGame) Binned() int { return g.binned }
func (g *fakeGame) SetViewport(cols, rows int) { g.viewport = [2]int{cols, rows} }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	if in.Has(core.ActionRestart) {
		g.score = 0
	}
	return core.StepResult{State: g.State()}
}

type savedRun struct {
	gameID        string
	score, binned int
}

type fakeSaver struct{ runs []savedRun }

func (s *fakeSaver) SaveScore(gameID string, score, binned int) (int64, error) {
	s.runs = append(s.runs, savedRun{gameID, score, binned})
	return int64(len(s.runs)), nil
}

func newTestModel(g *fakeGame, s ScoreSaver) Model {
	return NewModel(g, s, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
}

func TestModelForwardsPointerEvents(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)
	m.Init()

	var model tea.Model = m
	model, _ = model.Update(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	model, _ = model.Update(tea.MouseMsg{X: 6, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	model, _ = model.Update(TickMsg{})

	if len(g.steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(g.steps))
	}
	ptrs := g.steps[0].Pointers
	if len(ptrs) != 2 || ptrs[0].Kind != core.PointerDown || ptrs[1].X != 6 {
		t.Errorf("pointers = %+v", ptrs)
	}

	model.Update(TickMsg{})
	if len(g.steps[1].Pointers) != 0 {
		t.Error("pointer events leaked into the next tick")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)
	m.Init()

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if g.viewport != [2]int{100, 30} {
		t.Errorf("viewport = %v", g.viewport)
	}
	if model.(Model).screen.Width() != 100 {
		t.Error("screen not resized")
	}
}

func TestModelSavesRunOnReset(t *testing.T) {
	g := &fakeGame{score: 7, binned: 3}
	s := &fakeSaver{}
	m := newTestModel(g, s)
	m.Init()

	model, _ := m.Update(keyMsg("r"))
	if len(s.runs) != 1 || s.runs[0] != (savedRun{"fake", 7, 3}) {
		t.Fatalf("runs = %+v", s.runs)
	}

	model, _ = model.Update(TickMsg{})
	if !g.steps[0].Has(core.ActionRestart) {
		t.Error("restart not forwarded to the game")
	}

	// Score is zero after the reset, so quitting records nothing more.
	_, cmd := model.Update(keyMsg("q"))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if len(s.runs) != 1 {
		t.Errorf("runs = %+v", s.runs)
	}
}

func TestModelSavesRunOnQuit(t *testing.T) {
	g := &fakeGame{score: 4}
	s := &fakeSaver{}
	m := newTestModel(g, s)
	m.Init()

	model, _ := m.Update(keyMsg("q"))
	if len(s.runs) != 1 || s.runs[0].score != 4 {
		t.Errorf("runs = %+v", s.runs)
	}
	if model.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResetWhilePausedSavesOnce(t *testing.T) {
	game := trashtoss.New(
		trashtoss.WithConfig(config.DefaultTossConfig()),
		trashtoss.WithStore(trashtoss.NewMemoryKV()),
	)
	s := &fakeSaver{}
	m := NewModel(game, s, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1})
	m.Init()
	game.Round().Scores().Add(4)

	var model tea.Model = m
	for _, k := range []string{"p", "r", "p", "r"} {
		model, _ = model.Update(keyMsg(k))
		model, _ = model.Update(TickMsg{})
	}

	if len(s.runs) != 1 || s.runs[0] != (savedRun{trashtoss.GameID, 4, 0}) {
		t.Errorf("runs = %+v, want the run saved once", s.runs)
	}
	// The last reset also unpauses.
	if st := game.State(); st.Score != 0 || st.Paused {
		t.Errorf("state = %+v, want score 0 and running", st)
	}
}
