package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionRight)
	if !f.Has(ActionRight) {
		t.Error("Has(ActionRight) should be true after Set")
	}
	if f.Has(ActionLeft) {
		t.Error("Has(ActionLeft) should be false")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionRight) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionRight.String() != "Right" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out-of-range action should be Unknown")
	}
}
