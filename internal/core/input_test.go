package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set(ActionPause) was not recorded")
	}
	if f.Has(ActionRestart) {
		t.Error("unexpected ActionRestart")
	}
}

func TestInputFramePointersClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)
	f.AddPointer(PointerEvent{Kind: PointerDown, X: 1, Y: 2})
	f.AddPointer(PointerEvent{Kind: PointerUp, X: 3, Y: 4})

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionRestart) || len(f.Pointers) != 0 {
		t.Errorf("Clear() left state behind: %+v", f)
	}
	if !clone.Has(ActionRestart) || len(clone.Pointers) != 2 {
		t.Fatalf("Clone() should be independent of Clear(): %+v", clone)
	}
	if clone.Pointers[1].Kind != PointerUp || clone.Pointers[1].X != 3 {
		t.Errorf("Clone() pointer = %+v", clone.Pointers[1])
	}
}

func TestPointerKindRoundTrip(t *testing.T) {
	for _, k := range []PointerKind{PointerDown, PointerMove, PointerUp} {
		got, ok := ParsePointerKind(k.String())
		if !ok || got != k {
			t.Errorf("ParsePointerKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParsePointerKind("wheel"); ok {
		t.Error("unknown pointer kind should not parse")
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
