package input

import (
	"encoding/binary"
	"io"
	"log"
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// Linux input event constants.
// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
const (
	evKey = 0x01

	keyValueRelease = 0
	keyValuePress   = 1
	keyValueRepeat  = 2
)

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// DeviceHandler reads raw key events from an input device node, which
// reports real press and release edges. Usually needs membership of the
// input group or root.
type DeviceHandler struct {
	path    string
	file    *os.File
	events  chan keyEvent
	done    chan struct{}
	stopped chan struct{}
	codes   map[uint16]KeyID
	keys    keyStates
}

func NewDevice(path string) *DeviceHandler {
	return &DeviceHandler{
		path:    path,
		events:  make(chan keyEvent, 128),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		codes:   map[uint16]KeyID{},
		keys:    keyStates{},
	}
}

func (h *DeviceHandler) Init() error {
	file, err := os.Open(h.path)
	if nil != err {
		return errors.Wrap(err, "unable to open input device")
	}
	h.file = file

	go func() {
		defer close(h.stopped)
		var event keyEvent
		for {
			if err := binary.Read(file, binary.LittleEndian, &event); nil != err {
				if err != io.EOF && !errors.Is(err, os.ErrClosed) {
					log.Println("unable to read input device:", err)
				}
				return
			}
			if event.Type != evKey {
				continue
			}
			// A full buffer must not trap the reader once nothing
			// drains it any more.
			select {
			case h.events <- event:
			case <-h.done:
				return
			}
		}
	}()
	return nil
}

func (h *DeviceHandler) Deinit() {
	if nil == h.file {
		return
	}
	close(h.done)
	h.file.Close()
	<-h.stopped
}

func (h *DeviceHandler) RegisterKey(k KeyID) {
	code, ok := keyCode(k)
	if !ok {
		log.Printf("no device key code for key %v", k)
		return
	}
	h.codes[code] = k
	h.keys.register(k)
}

func (h *DeviceHandler) UpdateKeyStates() {
	for {
		select {
		case event := <-h.events:
			k, ok := h.codes[event.Code]
			if !ok {
				continue
			}
			switch event.Value {
			case keyValuePress:
				h.keys.press(k)
			case keyValueRelease:
				h.keys.release(k)
			}
		default:
			return
		}
	}
}

func (h *DeviceHandler) ResetKeyStates() {
	h.keys.resetEdges()
}

func (h *DeviceHandler) WasKeyPressed(k KeyID) bool  { return h.keys.pressed(k) }
func (h *DeviceHandler) WasKeyReleased(k KeyID) bool { return h.keys.released(k) }
func (h *DeviceHandler) WasKeyHeld(k KeyID) bool     { return h.keys.held(k) }

// KEY_* codes for the keys a binding may name.
var runeKeyCodes = map[rune]uint16{
	'1': 2, '2': 3, '3': 4, '4': 5, '5': 6,
	'6': 7, '7': 8, '8': 9, '9': 10, '0': 11,
	'q': 16, 'w': 17, 'e': 18, 'r': 19, 't': 20,
	'y': 21, 'u': 22, 'i': 23, 'o': 24, 'p': 25,
	'a': 30, 's': 31, 'd': 32, 'f': 33, 'g': 34,
	'h': 35, 'j': 36, 'k': 37, 'l': 38, ';': 39,
	'z': 44, 'x': 45, 'c': 46, 'v': 47, 'b': 48,
	'n': 49, 'm': 50, ' ': 57,
}

func keyCode(k KeyID) (uint16, bool) {
	switch k {
	case MenuPrevious:
		return 103, true // KEY_UP
	case MenuNext:
		return 108, true // KEY_DOWN
	case MenuConfirm:
		return 28, true // KEY_ENTER
	case Exit:
		return 1, true // KEY_ESC
	}
	if k < 0 {
		return 0, false
	}
	code, ok := runeKeyCodes[rune(k)]
	return code, ok
}
