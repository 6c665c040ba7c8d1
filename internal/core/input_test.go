package core

import (
	"reflect"
	"testing"
)

func TestInputQueueDrainOrder(t *testing.T) {
	q := NewInputQueue()
	q.Push(ActionPointer)
	q.Push(ActionFlap)

	got := q.Drain()
	expected := []Action{ActionPointer, ActionFlap}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Drain() = %v, expected %v", got, expected)
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty after Drain, Len() = %d", q.Len())
	}
	if again := q.Drain(); again != nil {
		t.Errorf("second Drain() = %v, expected nil", again)
	}
}

func TestInputQueueCollapsesRepeats(t *testing.T) {
	q := NewInputQueue()

	// Key auto-repeat delivering several presses inside one tick
	for i := 0; i < 5; i++ {
		q.Push(ActionFlap)
	}
	q.Push(ActionNone)

	got := q.Drain()
	if len(got) != 1 || got[0] != ActionFlap {
		t.Errorf("Drain() = %v, expected a single Flap", got)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionFlap, "Flap"},
		{ActionPointer, "Pointer"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tc.action), got, tc.expected)
		}
	}
}
