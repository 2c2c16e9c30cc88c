package game

// LaneCount is the number of parallel note tracks, each bound to one key.
const LaneCount = 4

type State uint8

const (
	StateInactive State = iota
	StateActive
	StatePressed
	StateMissed
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	case StatePressed:
		return "pressed"
	case StateMissed:
		return "missed"
	}
	return "unknown"
}

type Note struct {
	Lane         int     // The lane column, [0, LaneCount)
	StartSeconds float64 // The time the note should be pressed
	EndSeconds   float64 // The time the note should be released

	// This is state, owned by the judging loop.
	// Only ever moves forward: inactive, active, then pressed or missed.
	State State
}
