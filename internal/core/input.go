package core

// Action is a logical input event, abstracted from the physical key or
// pointer that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W - flap; also starts and restarts
	ActionPointer        // Mouse press, Enter - start or restart only, never flaps
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPointer:
		return "Pointer"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputQueue collects edge-triggered actions between two ticks.
// Every key-down or pointer-press event is pushed once; the simulation drains
// the queue exactly once per tick. Repeats of the same action within one tick
// collapse into a single entry, so one tick never sees two flaps.
type InputQueue struct {
	pending []Action
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{pending: make([]Action, 0, 4)}
}

// Push records an action for the next tick. ActionNone is dropped.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	for _, p := range q.pending {
		if p == a {
			return
		}
	}
	q.pending = append(q.pending, a)
}

// Drain returns the queued actions in arrival order and empties the queue.
func (q *InputQueue) Drain() []Action {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Action, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// Len returns the number of queued actions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}
