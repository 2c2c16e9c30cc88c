package manager

import (
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/eotk/internal/audio"
	"git.lost.host/meutraa/eotk/internal/config"
	"git.lost.host/meutraa/eotk/internal/game"
	"git.lost.host/meutraa/eotk/internal/input"
	"git.lost.host/meutraa/eotk/internal/parser"
	"git.lost.host/meutraa/eotk/internal/render"
	"git.lost.host/meutraa/eotk/internal/score"
	"git.lost.host/meutraa/eotk/internal/timer"
)

type step uint8

const (
	stepLevelSelect step = iota
	stepLevelPlay
	stepLevelResults
	stepQuitSuccess
	stepQuitError
)

// Manager drives the game: it owns the frame loop, sequences the level
// select, play and results phases, and judges note timing during play.
// Everything runs on the caller's goroutine; the capability interfaces
// are only ever touched between frames.
type Manager struct {
	cfg     *config.Settings
	input   input.Handler
	view    render.Renderer
	sound   audio.Player
	tracker score.Tracker
	parser  parser.Parser
	clock   *timer.Timer

	nextStep           step
	timeSinceStepStart float64

	levelList          []parser.Entry
	selectedLevelIndex int
	level              *game.Level

	laneKeys           [game.LaneCount]input.KeyID
	latestLaneMistakes [game.LaneCount]float64
}

// New registers the key bindings and loads the level list and high
// score table. A failure here is a startup failure; the step machine
// never runs.
func New(
	cfg *config.Settings,
	in input.Handler,
	view render.Renderer,
	sound audio.Player,
	tracker score.Tracker,
	psr parser.Parser,
) (*Manager, error) {
	if len(cfg.LaneKeys) != game.LaneCount {
		return nil, errors.Errorf("need %v lane keys, have %q", game.LaneCount, string(cfg.LaneKeys))
	}

	m := &Manager{
		cfg:      cfg,
		input:    in,
		view:     view,
		sound:    sound,
		tracker:  tracker,
		parser:   psr,
		clock:    timer.New(),
		nextStep: stepLevelSelect,
	}

	for i, r := range cfg.LaneKeys {
		m.laneKeys[i] = input.Rune(r)
		in.RegisterKey(m.laneKeys[i])
	}
	in.RegisterKey(input.MenuPrevious)
	in.RegisterKey(input.MenuNext)
	in.RegisterKey(input.MenuConfirm)
	in.RegisterKey(input.Exit)

	entries, err := psr.ParseLevelList(filepath.Join(cfg.DataDir, cfg.LevelList))
	if nil != err {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("level list is empty")
	}
	m.levelList = entries

	if err := tracker.LoadHighScores(); nil != err {
		return nil, err
	}

	return m, nil
}

// Run loops the step machine until a terminal state. It returns nil
// when the player quit from the select menu and the failing error when
// any phase collapsed the machine.
func (m *Manager) Run() error {
	var runErr error
	for m.nextStep != stepQuitSuccess && m.nextStep != stepQuitError {
		var init func() error
		var update func() (bool, error)
		switch m.nextStep {
		case stepLevelSelect:
			init, update = m.selectLevelInit, m.selectLevelUpdate
		case stepLevelPlay:
			init, update = m.playLevelInit, m.playLevelUpdate
		case stepLevelResults:
			init, update = m.levelResultsInit, m.levelResultsUpdate
		}
		if err := m.playStep(init, update); nil != err {
			m.nextStep = stepQuitError
			runErr = err
		}
	}
	return runErr
}

// playStep runs one phase: init exactly once, then update at the frame
// cadence until it reports completion. Input is polled every iteration
// so no edge is lost, but edges are only consumed and reset around an
// update, giving each update a stable snapshot. The elapsed time handed
// to updates restarts at zero for every phase.
func (m *Manager) playStep(init func() error, update func() (bool, error)) error {
	if err := init(); nil != err {
		return err
	}

	interval := 1.0 / m.cfg.FrameRate
	m.timeSinceStepStart = 0
	done, err := update()
	if nil != err {
		return err
	}

	startTime := m.clock.ElapsedSeconds()
	previousUpdateTime := startTime
	for !done {
		m.input.UpdateKeyStates()
		now := m.clock.ElapsedSeconds()
		if now > previousUpdateTime+interval {
			m.timeSinceStepStart = now - startTime
			done, err = update()
			if nil != err {
				return err
			}
			m.sound.UpdateSourceStates()
			m.input.ResetKeyStates()
			previousUpdateTime = now
		}
		time.Sleep(time.Millisecond)
	}
	return nil
}

func (m *Manager) effectPath(name string) string {
	return filepath.Join(m.cfg.DataDir, m.cfg.EffectsDir, name)
}

func (m *Manager) songPath() string {
	return filepath.Join(m.cfg.DataDir, m.cfg.SongsDir, m.level.AudioFileName)
}

func (m *Manager) selectedLevel() parser.Entry {
	return m.levelList[m.selectedLevelIndex]
}

func (m *Manager) selectLevelInit() error {
	if err := m.sound.LoadWav(m.effectPath(config.MenuNavigateSound)); nil != err {
		return err
	}
	if err := m.sound.LoadWav(m.effectPath(config.MenuConfirmSound)); nil != err {
		return err
	}

	names := make([]string, len(m.levelList))
	for i, entry := range m.levelList {
		names[i] = entry.DisplayName
	}

	m.view.ClearConsole()
	m.view.ClearUI()
	m.view.DrawUIBorder()
	m.view.DrawSelectUI(names)
	m.view.UpdateSelectUI(m.selectedLevelIndex, m.tracker.HighScore(m.selectedLevel().FileName))
	m.view.Refresh()
	return nil
}

func (m *Manager) selectLevelUpdate() (bool, error) {
	if m.input.WasKeyPressed(input.Exit) {
		m.view.ClearConsole()
		m.view.Refresh()
		m.nextStep = stepQuitSuccess
		return true, nil
	}

	levelCount := len(m.levelList)
	selectionChanged := false
	if m.input.WasKeyPressed(input.MenuNext) {
		m.selectedLevelIndex = (m.selectedLevelIndex + 1) % levelCount
		selectionChanged = true
	}
	if m.input.WasKeyPressed(input.MenuPrevious) {
		m.selectedLevelIndex = (m.selectedLevelIndex + levelCount - 1) % levelCount
		selectionChanged = true
	}
	selectionConfirmed := m.input.WasKeyPressed(input.MenuConfirm)

	if selectionChanged {
		if err := m.sound.Play(m.effectPath(config.MenuNavigateSound)); nil != err {
			return true, err
		}
	}
	if selectionConfirmed {
		if err := m.sound.Play(m.effectPath(config.MenuConfirmSound)); nil != err {
			return true, err
		}
		m.nextStep = stepLevelPlay
		m.view.DrawConfirmedUI(m.selectedLevelIndex)
		m.view.Refresh()
		time.Sleep(time.Second)
		return true, nil
	}

	if selectionChanged {
		m.view.UpdateSelectUI(m.selectedLevelIndex, m.tracker.HighScore(m.selectedLevel().FileName))
		m.view.Refresh()
	}
	return false, nil
}

func (m *Manager) playLevelInit() error {
	if err := m.sound.LoadWav(m.effectPath(config.ComboBreakSound)); nil != err {
		return err
	}

	level, err := m.parser.ParseLevel(filepath.Join(m.cfg.DataDir, m.cfg.LevelsDir, m.selectedLevel().FileName))
	if nil != err {
		return err
	}
	m.level = level

	if err := m.sound.LoadWav(m.songPath()); nil != err {
		return err
	}
	if err := m.sound.Play(m.songPath()); nil != err {
		return err
	}

	m.tracker.Reset()
	for i := range m.latestLaneMistakes {
		m.latestLaneMistakes[i] = -2 * m.cfg.NoteErrorDisplayDuration
	}

	m.view.ClearUI()
	m.view.DrawUI(m.level.SongName, int(m.level.LengthSeconds))
	return nil
}

func (m *Manager) playLevelUpdate() (bool, error) {
	if err := m.updateGameData(); nil != err {
		return true, err
	}
	m.updateGameView()

	if m.timeSinceStepStart <= m.level.LengthSeconds {
		return false, nil
	}
	m.nextStep = stepLevelResults
	return true, nil
}

func (m *Manager) updateGameView() {
	m.view.ClearNotesArea()
	for lane := 0; lane < game.LaneCount; lane++ {
		for _, note := range m.level.ActiveNotes(lane) {
			m.view.DrawNote(note, m.level.LaneLengthSeconds, m.timeSinceStepStart)
		}
	}

	held := make([]bool, game.LaneCount)
	mistakes := make([]bool, game.LaneCount)
	for i := 0; i < game.LaneCount; i++ {
		held[i] = m.input.WasKeyHeld(m.laneKeys[i])
		mistakes[i] = m.timeSinceStepStart-m.latestLaneMistakes[i] <= m.cfg.NoteErrorDisplayDuration
	}
	m.view.DrawBottomBar(held, mistakes)

	level := m.selectedLevel().FileName
	m.view.UpdateUI(
		int(m.timeSinceStepStart),
		m.tracker.Score(),
		m.tracker.Combo(),
		m.tracker.IsFullCombo(),
		m.tracker.Missed(),
		m.tracker.HighScore(level),
		m.tracker.IsHighScore(level),
	)
	m.view.Refresh()
}

func (m *Manager) levelResultsInit() error {
	if err := m.sound.UnloadFile(m.songPath()); nil != err {
		return err
	}
	if err := m.sound.LoadWav(m.effectPath(config.MenuBackSound)); nil != err {
		return err
	}

	level := m.selectedLevel().FileName
	m.view.ClearNotesArea()
	m.view.ClearUIBottom()
	m.view.DrawResults(
		m.tracker.Score(),
		m.tracker.IsHighScore(level),
		m.tracker.Accuracy(),
		m.tracker.Played()-m.tracker.Missed(),
		m.tracker.Played(),
		m.tracker.MaxCombo(),
		m.tracker.Missed(),
	)
	m.view.Refresh()

	if m.tracker.IsHighScore(level) {
		m.tracker.SetHighScore(level)
		if err := m.tracker.SaveHighScores(); nil != err {
			return err
		}
	}
	return nil
}

func (m *Manager) levelResultsUpdate() (bool, error) {
	m.view.UpdateResults(int(m.timeSinceStepStart)%2 == 1)
	m.view.Refresh()

	if m.input.WasKeyPressed(input.MenuConfirm) {
		if err := m.sound.Play(m.effectPath(config.MenuBackSound)); nil != err {
			return true, err
		}
		m.nextStep = stepLevelSelect
		return true, nil
	}
	return false, nil
}
