package core

import (
	"reflect"
	"testing"
)

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Error("New frame should have no actions")
	}
	if !f.Empty() {
		t.Error("New frame should be empty")
	}

	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Frame should have ActionUp after Set")
	}
	if f.Has(ActionDown) {
		t.Error("Frame should not have ActionDown")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Zero frame should accept Set")
	}
}

func TestInputFrameDirectionsKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)
	f.Set(ActionUp)

	got := f.Directions()
	expected := []Direction{DirUp, DirLeft, DirUp}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Directions() = %v, expected %v", got, expected)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionRestart)
	f.Clear()

	if f.Has(ActionRight) || f.Has(ActionRestart) {
		t.Error("Clear should remove all actions")
	}
	if len(f.Directions()) != 0 {
		t.Error("Clear should remove pressed directions")
	}
	if !f.Empty() {
		t.Error("Frame should be empty after Clear")
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action   Action
		expected Direction
	}{
		{ActionUp, DirUp},
		{ActionDown, DirDown},
		{ActionLeft, DirLeft},
		{ActionRight, DirRight},
		{ActionPause, DirNone},
		{ActionNone, DirNone},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
