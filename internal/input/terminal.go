package input

import (
	"time"
	"unicode"

	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
)

// TerminalHandler reads key events from the controlling terminal. A
// terminal only reports key-down events, so a key counts as held while
// autorepeat keeps delivering it and a release edge is synthesized once
// no event has arrived for HoldTimeout. The timeout must outlast the
// autorepeat delay or every hold splits in two. For exact release
// timing use DeviceHandler instead.
type TerminalHandler struct {
	HoldTimeout time.Duration

	events   <-chan keyboard.KeyEvent
	keys     keyStates
	lastSeen map[KeyID]time.Time
}

func NewTerminal() *TerminalHandler {
	return &TerminalHandler{
		HoldTimeout: 600 * time.Millisecond,
		keys:        keyStates{},
		lastSeen:    map[KeyID]time.Time{},
	}
}

func (h *TerminalHandler) Init() error {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return errors.Wrap(err, "unable to open keyboard")
	}
	h.events = events
	return nil
}

func (h *TerminalHandler) Deinit() {
	keyboard.Close()
}

func (h *TerminalHandler) RegisterKey(k KeyID) {
	h.keys.register(k)
}

func (h *TerminalHandler) UpdateKeyStates() {
	now := time.Now()
	for {
		select {
		case event := <-h.events:
			if nil != event.Err {
				continue
			}
			k, ok := mapEvent(event)
			if !ok {
				continue
			}
			h.keys.press(k)
			h.lastSeen[k] = now
		default:
			h.expireHeld(now)
			return
		}
	}
}

func (h *TerminalHandler) expireHeld(now time.Time) {
	for k, st := range h.keys {
		if st.held && now.Sub(h.lastSeen[k]) > h.HoldTimeout {
			h.keys.release(k)
		}
	}
}

func (h *TerminalHandler) ResetKeyStates() {
	h.keys.resetEdges()
}

func (h *TerminalHandler) WasKeyPressed(k KeyID) bool  { return h.keys.pressed(k) }
func (h *TerminalHandler) WasKeyReleased(k KeyID) bool { return h.keys.released(k) }
func (h *TerminalHandler) WasKeyHeld(k KeyID) bool     { return h.keys.held(k) }

func mapEvent(event keyboard.KeyEvent) (KeyID, bool) {
	switch event.Key {
	case keyboard.KeyArrowUp:
		return MenuPrevious, true
	case keyboard.KeyArrowDown:
		return MenuNext, true
	case keyboard.KeyEnter:
		return MenuConfirm, true
	case keyboard.KeyEsc:
		return Exit, true
	}
	if event.Rune == 0 {
		return 0, false
	}
	return Rune(unicode.ToLower(event.Rune)), true
}
