package input

import (
	"testing"
	"time"

	"github.com/eiannone/keyboard"
)

func TestMapEvent(t *testing.T) {
	cases := map[keyboard.KeyEvent]KeyID{
		{Key: keyboard.KeyArrowUp}:   MenuPrevious,
		{Key: keyboard.KeyArrowDown}: MenuNext,
		{Key: keyboard.KeyEnter}:     MenuConfirm,
		{Key: keyboard.KeyEsc}:       Exit,
		{Rune: 'd'}:                  Rune('d'),
		{Rune: 'D'}:                  Rune('d'),
	}
	for event, expected := range cases {
		k, ok := mapEvent(event)
		if !ok || k != expected {
			t.Errorf("event %+v mapped to %v, expected %v", event, k, expected)
		}
	}

	if _, ok := mapEvent(keyboard.KeyEvent{}); ok {
		t.Error("an empty event maps to nothing")
	}
}

func TestTerminalSynthesizedRelease(t *testing.T) {
	h := NewTerminal()
	h.HoldTimeout = 10 * time.Millisecond
	d := Rune('d')
	h.RegisterKey(d)

	// Simulate a key-down event having been drained.
	h.keys.press(d)
	h.lastSeen[d] = time.Now()

	h.UpdateKeyStates()
	if !h.WasKeyHeld(d) || h.WasKeyReleased(d) {
		t.Fatal("a fresh press must be held, not released")
	}

	time.Sleep(3 * h.HoldTimeout)
	h.UpdateKeyStates()
	if h.WasKeyHeld(d) {
		t.Fatal("a silent key must stop being held after the timeout")
	}
	if !h.WasKeyReleased(d) {
		t.Fatal("the synthesized release edge must be reported")
	}

	h.ResetKeyStates()
	if h.WasKeyReleased(d) {
		t.Fatal("the release edge must clear on reset")
	}
}
