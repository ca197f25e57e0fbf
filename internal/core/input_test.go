package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionSelect)

	if !f.Has(ActionLeft) || !f.Has(ActionSelect) {
		t.Error("frame should hold the actions it was built with")
	}
	if f.Has(ActionRight) {
		t.Error("frame should not hold unset actions")
	}

	f.Set(ActionNone)
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
}

func TestInputFrameChoice(t *testing.T) {
	tests := []struct {
		name     string
		frame    InputFrame
		expected int
	}{
		{"none", NewInputFrame(ActionSelect), -1},
		{"first", NewInputFrame(ActionChoice1), 0},
		{"fourth", NewInputFrame(ActionChoice4), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.frame.Choice(); got != tt.expected {
				t.Errorf("Choice() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionChoice3.String() != "Choice3" {
		t.Errorf("String() = %q, expected Choice3", ActionChoice3.String())
	}
	if Action(200).String() != "Unknown" {
		t.Error("out-of-range action should be Unknown")
	}
}
