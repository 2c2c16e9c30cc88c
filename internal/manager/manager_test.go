package manager

import (
	"testing"

	"git.lost.host/meutraa/eotk/internal/config"
	"git.lost.host/meutraa/eotk/internal/game"
	"git.lost.host/meutraa/eotk/internal/input"
	"git.lost.host/meutraa/eotk/internal/parser"
)

func testEntries() []parser.Entry {
	return []parser.Entry{
		{FileName: "a.txt", DisplayName: "Song A"},
		{FileName: "b.txt", DisplayName: "Song B"},
	}
}

// A zero length level completes its play phase on the first frame with
// elapsed time, keeping the scripted input frames deterministic.
func testPlayLevel() *game.Level {
	return &game.Level{
		SongName:          "Song B",
		AudioFileName:     "b.wav",
		LengthSeconds:     0,
		LaneLengthSeconds: 1,
	}
}

type runRig struct {
	keys    *scriptInput
	sound   *fakeAudio
	view    *fakeView
	tracker *fakeTracker
	parser  *fakeParser
}

func newRunRig(frames []map[input.KeyID]bool) *runRig {
	return &runRig{
		keys:    &scriptInput{frames: frames},
		sound:   newFakeAudio(),
		view:    &fakeView{},
		tracker: newFakeTracker(),
		parser:  &fakeParser{entries: testEntries(), level: testPlayLevel()},
	}
}

func (r *runRig) newManager(t *testing.T) *Manager {
	t.Helper()
	cfg := config.Default()
	cfg.FrameRate = 500
	m, err := New(cfg, r.keys, r.view, r.sound, r.tracker, r.parser)
	if nil != err {
		t.Fatal("unable to construct manager:", err)
	}
	return m
}

func TestRunQuitFromSelect(t *testing.T) {
	rig := newRunRig([]map[input.KeyID]bool{
		{},
		{input.Exit: true},
	})
	m := rig.newManager(t)

	if err := m.Run(); nil != err {
		t.Fatal("voluntary exit must succeed:", err)
	}
	if m.nextStep != stepQuitSuccess {
		t.Fatalf("machine stopped in step %v", m.nextStep)
	}
}

func TestRunFullSession(t *testing.T) {
	rig := newRunRig([]map[input.KeyID]bool{
		{},                        // settle
		{input.MenuNext: true},    // move selection to Song B
		{input.MenuConfirm: true}, // start the level
		{},                        // play, first update at t=0
		{},                        // results settle
		{input.MenuConfirm: true}, // leave results
		{},                        // back in select
		{input.Exit: true},        // quit
	})
	m := rig.newManager(t)

	if err := m.Run(); nil != err {
		t.Fatal("session should run to a clean exit:", err)
	}

	if m.selectedLevelIndex != 1 {
		t.Fatalf("selection index %v, expected 1", m.selectedLevelIndex)
	}
	if rig.sound.playCount(config.MenuNavigateSound) != 1 {
		t.Fatal("navigation should play its cue once")
	}
	if rig.sound.playCount(config.MenuConfirmSound) != 1 {
		t.Fatal("confirmation should play its cue once")
	}
	if rig.sound.playCount("b.wav") != 1 {
		t.Fatal("the selected song should play once")
	}
	if rig.sound.playCount(config.MenuBackSound) != 1 {
		t.Fatal("leaving results should play its cue once")
	}
	if !rig.view.resultsDrawn {
		t.Fatal("the results screen should have been drawn")
	}
	if rig.tracker.saves != 0 {
		t.Fatal("a zero score must not persist a high score")
	}
}

func TestResultsPromptBlinksOnOddSeconds(t *testing.T) {
	view := &fakeView{}
	m := &Manager{
		cfg:   config.Default(),
		input: newStubInput(),
		view:  view,
		sound: newFakeAudio(),
	}

	for _, elapsed := range []float64{0, 1.2, 2.9, 3.0} {
		m.timeSinceStepStart = elapsed
		done, err := m.levelResultsUpdate()
		if done || nil != err {
			t.Fatal("the results screen must wait for confirm:", err)
		}
	}

	expected := []bool{false, true, false, true}
	for i, show := range expected {
		if view.resultPrompts[i] != show {
			t.Fatalf("prompt sequence %v, expected %v", view.resultPrompts, expected)
		}
	}
}

func TestRunInitFailureIsFatal(t *testing.T) {
	rig := newRunRig([]map[input.KeyID]bool{{}})
	rig.sound.failLoad = config.MenuNavigateSound
	m := rig.newManager(t)

	if err := m.Run(); nil == err {
		t.Fatal("a failing phase init must abort the run")
	}
	if m.nextStep != stepQuitError {
		t.Fatalf("machine stopped in step %v", m.nextStep)
	}
}

func TestRunHighScoreSaveFailureIsFatal(t *testing.T) {
	rig := newRunRig([]map[input.KeyID]bool{
		{},
		{input.MenuConfirm: true},
		{},
	})
	rig.tracker.forceHigh = true
	rig.tracker.failSave = true
	m := rig.newManager(t)

	if err := m.Run(); nil == err {
		t.Fatal("a failing high score save must abort the run")
	}
}

func TestNewFailsWithoutLevelList(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir() // no level list inside
	keys := &scriptInput{}
	_, err := New(cfg, keys, &fakeView{}, newFakeAudio(), newFakeTracker(), &parser.DefaultParser{})
	if nil == err {
		t.Fatal("an unreadable level list must fail startup")
	}
}

func TestNewFailsWithEmptyLevelList(t *testing.T) {
	cfg := config.Default()
	keys := &scriptInput{}
	psr := &fakeParser{}
	_, err := New(cfg, keys, &fakeView{}, newFakeAudio(), newFakeTracker(), psr)
	if nil == err {
		t.Fatal("an empty level list must fail startup")
	}
}
