package registry

import (
	"testing"

	"github.com/vovakirdan/trash-toss/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig) {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen) {}
func (s stubGame) State() core.GameState { return core.GameState{} }

type describedGame struct{ stubGame }

func (describedGame) Description() string { return "a described stub" }

func findInfo(id string) (GameInfo, bool) {
	for _, info := range List() {
		if info.ID == id {
			return info, true
		}
	}
	return GameInfo{}, false
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("Exists() = false after Register")
	}
	g, err := Create("zz_stub")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	info, ok := findInfo("zz_stub")
	if !ok || info.Title != "Stub zz_stub" || info.Description != "" {
		t.Errorf("List() entry = %+v, %v", info, ok)
	}
}

func TestDescriptionAndDefault(t *testing.T) {
	RegisterDefault("aa_described", func() Game {
		return describedGame{stubGame{id: "aa_described"}}
	})

	info, ok := findInfo("aa_described")
	if !ok || info.Description != "a described stub" || !info.Default {
		t.Errorf("List() entry = %+v, %v", info, ok)
	}
	if id, ok := Default(); !ok || id != "aa_described" {
		t.Errorf("Default() = %q, %v", id, ok)
	}

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}
