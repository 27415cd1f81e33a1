package core

import (
	"slices"
	"testing"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	var f InputFrame
	f.Add(ActionSoftDropStart)
	f.Add(ActionNone)
	f.Add(ActionLeft)
	f.Add(ActionSoftDropEnd)

	expected := []Action{ActionSoftDropStart, ActionLeft, ActionSoftDropEnd}
	if !slices.Equal(f.Actions, expected) {
		t.Errorf("Actions = %v, expected %v", f.Actions, expected)
	}
}

func TestActionString(t *testing.T) {
	if ActionSoftDropEnd.String() != "SoftDropEnd" {
		t.Errorf("String() = %q, expected SoftDropEnd", ActionSoftDropEnd.String())
	}
	if Action(42).String() != "Unknown" {
		t.Errorf("String() = %q, expected Unknown", Action(42).String())
	}
}
