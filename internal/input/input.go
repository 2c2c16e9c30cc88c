package input

// KeyID names a registered button. Lane keys are their rune; the control
// keys sit below zero so they can never collide with a lane binding.
type KeyID int

const (
	MenuPrevious KeyID = -(iota + 1)
	MenuNext
	MenuConfirm
	Exit
)

func Rune(r rune) KeyID {
	return KeyID(r)
}

// Handler is polled once per loop iteration. Pressed and released are
// edges accumulated since the last ResetKeyStates, held is a level.
// Keys are registered once at startup; events for anything else are
// dropped.
type Handler interface {
	Init() error
	Deinit()
	RegisterKey(k KeyID)
	UpdateKeyStates()
	ResetKeyStates()
	WasKeyPressed(k KeyID) bool
	WasKeyReleased(k KeyID) bool
	WasKeyHeld(k KeyID) bool
}

type keyState struct {
	pressed  bool
	released bool
	held     bool
}

type keyStates map[KeyID]*keyState

func (s keyStates) register(k KeyID) {
	s[k] = &keyState{}
}

func (s keyStates) press(k KeyID) {
	st, ok := s[k]
	if !ok {
		return
	}
	if !st.held {
		st.pressed = true
	}
	st.held = true
}

func (s keyStates) release(k KeyID) {
	st, ok := s[k]
	if !ok {
		return
	}
	if st.held {
		st.released = true
	}
	st.held = false
}

func (s keyStates) resetEdges() {
	for _, st := range s {
		st.pressed = false
		st.released = false
	}
}

func (s keyStates) pressed(k KeyID) bool {
	st, ok := s[k]
	return ok && st.pressed
}

func (s keyStates) released(k KeyID) bool {
	st, ok := s[k]
	return ok && st.released
}

func (s keyStates) held(k KeyID) bool {
	st, ok := s[k]
	return ok && st.held
}
