package manager

import (
	"path/filepath"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/eotk/internal/game"
	"git.lost.host/meutraa/eotk/internal/input"
	"git.lost.host/meutraa/eotk/internal/parser"
)

// stubInput holds a fixed edge snapshot, set directly by judging tests.
type stubInput struct {
	pressedKeys  map[input.KeyID]bool
	releasedKeys map[input.KeyID]bool
	heldKeys     map[input.KeyID]bool
}

func newStubInput() *stubInput {
	return &stubInput{
		pressedKeys:  map[input.KeyID]bool{},
		releasedKeys: map[input.KeyID]bool{},
		heldKeys:     map[input.KeyID]bool{},
	}
}

func (s *stubInput) Init() error             { return nil }
func (s *stubInput) Deinit()                 {}
func (s *stubInput) RegisterKey(input.KeyID) {}
func (s *stubInput) UpdateKeyStates()        {}

func (s *stubInput) ResetKeyStates() {
	s.pressedKeys = map[input.KeyID]bool{}
	s.releasedKeys = map[input.KeyID]bool{}
}
func (s *stubInput) WasKeyPressed(k input.KeyID) bool  { return s.pressedKeys[k] }
func (s *stubInput) WasKeyReleased(k input.KeyID) bool { return s.releasedKeys[k] }
func (s *stubInput) WasKeyHeld(k input.KeyID) bool     { return s.heldKeys[k] }

// scriptInput plays back one edge snapshot per update; ResetKeyStates
// advances to the next frame, the way the loop consumes real input.
type scriptInput struct {
	frames []map[input.KeyID]bool
	frame  int
}

func (s *scriptInput) current() map[input.KeyID]bool {
	if s.frame >= len(s.frames) {
		return nil
	}
	return s.frames[s.frame]
}

func (s *scriptInput) Init() error             { return nil }
func (s *scriptInput) Deinit()                 {}
func (s *scriptInput) RegisterKey(input.KeyID) {}
func (s *scriptInput) UpdateKeyStates()        {}
func (s *scriptInput) ResetKeyStates()         { s.frame++ }

func (s *scriptInput) WasKeyPressed(k input.KeyID) bool { return s.current()[k] }
func (s *scriptInput) WasKeyReleased(input.KeyID) bool  { return false }
func (s *scriptInput) WasKeyHeld(input.KeyID) bool      { return false }

type fakeAudio struct {
	loaded   map[string]bool
	played   []string
	failLoad string // base name that fails to load
	failPlay string // base name that fails to play
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{loaded: map[string]bool{}}
}

func (a *fakeAudio) Init() error { return nil }
func (a *fakeAudio) Deinit()     {}

func (a *fakeAudio) LoadWav(path string) error {
	if filepath.Base(path) == a.failLoad {
		return errors.Errorf("unable to load %v", path)
	}
	a.loaded[path] = true
	return nil
}

func (a *fakeAudio) Play(path string) error {
	if filepath.Base(path) == a.failPlay {
		return errors.Errorf("unable to play %v", path)
	}
	a.played = append(a.played, filepath.Base(path))
	return nil
}

func (a *fakeAudio) UnloadFile(path string) error {
	if !a.loaded[path] {
		return errors.Errorf("%v is not loaded", path)
	}
	delete(a.loaded, path)
	return nil
}

func (a *fakeAudio) UpdateSourceStates() {}

func (a *fakeAudio) playCount(base string) int {
	count := 0
	for _, p := range a.played {
		if p == base {
			count++
		}
	}
	return count
}

type fakeView struct {
	resultsDrawn  bool
	resultPrompts []bool
}

func (v *fakeView) Init() error   { return nil }
func (v *fakeView) Deinit() error { return nil }

func (v *fakeView) ClearConsole()   {}
func (v *fakeView) ClearUI()        {}
func (v *fakeView) ClearUIBottom()  {}
func (v *fakeView) ClearNotesArea() {}
func (v *fakeView) Refresh()        {}

func (v *fakeView) DrawUIBorder()                                  {}
func (v *fakeView) DrawSelectUI([]string)                          {}
func (v *fakeView) UpdateSelectUI(int, int)                        {}
func (v *fakeView) DrawConfirmedUI(int)                            {}
func (v *fakeView) DrawUI(string, int)                             {}
func (v *fakeView) DrawNote(*game.Note, float64, float64)          {}
func (v *fakeView) DrawBottomBar([]bool, []bool)                   {}
func (v *fakeView) UpdateUI(int, int, uint, bool, uint, int, bool) {}

func (v *fakeView) UpdateResults(showPrompt bool) {
	v.resultPrompts = append(v.resultPrompts, showPrompt)
}

func (v *fakeView) DrawResults(int, bool, float64, uint, uint, uint, uint) {
	v.resultsDrawn = true
}

type fakeTracker struct {
	points   float64
	combo    uint
	maxCombo uint
	missed   uint
	played   uint
	high     map[string]int

	saves     int
	failSave  bool
	forceHigh bool
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{high: map[string]int{}}
}

func (t *fakeTracker) Init() error { return nil }
func (t *fakeTracker) Deinit()     {}

func (t *fakeTracker) Reset() {
	t.points, t.combo, t.maxCombo, t.missed, t.played = 0, 0, 0, 0, 0
}

func (t *fakeTracker) RegisterHit(points float64) {
	t.points += points
	t.played++
	t.combo++
	if t.combo > t.maxCombo {
		t.maxCombo = t.combo
	}
}

func (t *fakeTracker) RegisterMiss() {
	t.played++
	t.missed++
	t.combo = 0
}

func (t *fakeTracker) Score() int     { return int(t.points) }
func (t *fakeTracker) Combo() uint    { return t.combo }
func (t *fakeTracker) MaxCombo() uint { return t.maxCombo }
func (t *fakeTracker) Missed() uint   { return t.missed }
func (t *fakeTracker) Played() uint   { return t.played }

func (t *fakeTracker) Accuracy() float64 {
	if t.played == 0 {
		return 0
	}
	return float64(t.played-t.missed) / float64(t.played)
}

func (t *fakeTracker) IsFullCombo() bool { return t.played > 0 && t.missed == 0 }

func (t *fakeTracker) HighScore(level string) int { return t.high[level] }

func (t *fakeTracker) IsHighScore(level string) bool {
	return t.forceHigh || t.Score() > t.high[level]
}

func (t *fakeTracker) SetHighScore(level string) { t.high[level] = t.Score() }

func (t *fakeTracker) LoadHighScores() error { return nil }

func (t *fakeTracker) SaveHighScores() error {
	if t.failSave {
		return errors.New("unable to save high scores")
	}
	t.saves++
	return nil
}

type fakeParser struct {
	entries  []parser.Entry
	listErr  error
	level    *game.Level
	levelErr error
}

func (p *fakeParser) ParseLevelList(string) ([]parser.Entry, error) {
	return p.entries, p.listErr
}

func (p *fakeParser) ParseLevel(string) (*game.Level, error) {
	return p.level, p.levelErr
}
