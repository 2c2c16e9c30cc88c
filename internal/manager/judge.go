package manager

import (
	"git.lost.host/meutraa/eotk/internal/config"
	"git.lost.host/meutraa/eotk/internal/game"
)

// updateGameData runs one frame of note judgement against the input
// snapshot taken for this update, then scores the notes that resolved.
func (m *Manager) updateGameData() error {
	t := m.timeSinceStepStart
	m.level.ActivateNotesForTime(t)

	earlyPress := m.cfg.EarlyPressTolerance
	latePress := m.cfg.LatePressTolerance
	earlyRelease := m.cfg.EarlyReleaseTolerance
	maxMissDistance := m.cfg.MaxMissDistance

	bigComboLoss := false
	for lane := 0; lane < game.LaneCount; lane++ {
		notes := m.level.ActiveNotes(lane)
		if len(notes) == 0 {
			continue
		}

		// Walk to the bottom note: the first one still pressable or
		// releasable. The scan is bounded; if nothing qualifies the
		// last note is selected and every branch below is a no-op.
		bottom := notes[0]
		for i := 1; i < len(notes) &&
			bottom.State != game.StateActive &&
			t > bottom.EndSeconds-earlyRelease; i++ {
			bottom = notes[i]
		}

		switch bottom.State {
		case game.StateActive:
			if t > bottom.StartSeconds+latePress {
				bottom.State = game.StateMissed
				bigComboLoss = m.registerMissOnLane(lane) || bigComboLoss
			} else if m.input.WasKeyPressed(m.laneKeys[lane]) {
				if t >= bottom.StartSeconds-earlyPress {
					bottom.State = game.StatePressed
				} else if t+maxMissDistance >= bottom.StartSeconds-earlyPress {
					// Too early to count, close enough to punish.
					bottom.State = game.StateMissed
					bigComboLoss = m.registerMissOnLane(lane) || bigComboLoss
				}
			}
		case game.StatePressed:
			if m.input.WasKeyReleased(m.laneKeys[lane]) &&
				t <= bottom.EndSeconds-earlyRelease {
				bottom.State = game.StateMissed
				bigComboLoss = m.registerMissOnLane(lane) || bigComboLoss
			}
		}
	}
	m.level.RemoveNotesForTime(t, latePress)

	for _, note := range m.level.PlayedNotes() {
		if note.State == game.StatePressed {
			m.tracker.RegisterHit((note.EndSeconds - note.StartSeconds) * 10.0)
		} else if note.State != game.StateMissed {
			// Evicted without ever being engaged. Missed notes were
			// already registered when they were judged.
			bigComboLoss = m.registerMissOnLane(note.Lane) || bigComboLoss
		}
	}
	m.level.ClearPlayedNotes()

	if bigComboLoss {
		if err := m.sound.Play(m.effectPath(config.ComboBreakSound)); nil != err {
			return err
		}
	}
	return nil
}

// registerMissOnLane records a miss and reports whether it broke a
// combo big enough to warrant the audible cue.
func (m *Manager) registerMissOnLane(lane int) bool {
	comboBeforeNote := m.tracker.Combo()

	m.tracker.RegisterMiss()
	m.latestLaneMistakes[lane] = m.timeSinceStepStart

	return comboBeforeNote >= m.cfg.BigComboLossThreshold
}
