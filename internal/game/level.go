package game

// Level holds the full note list for a song plus the per-lane queues of
// notes that have scrolled into play. Notes slide from the full list into
// a lane queue once their start time is within the lane scroll window,
// and out of the queue into the played batch once their end time has
// passed the caller's tolerance.
type Level struct {
	SongName          string
	AudioFileName     string
	LengthSeconds     float64
	LaneLengthSeconds float64 // Scroll duration from lane top to the hit bar

	Notes []*Note // Ordered by StartSeconds

	activeNotes [LaneCount][]*Note
	nextNote    int // Index into Notes of the first not-yet-activated note
	playedNotes []*Note
}

// ActivateNotesForTime moves notes whose scroll window has been reached
// onto their lane queue. Notes is ordered by start time, so activation is
// a cursor walk and each lane queue stays in start order.
func (l *Level) ActivateNotesForTime(t float64) {
	for l.nextNote < len(l.Notes) {
		n := l.Notes[l.nextNote]
		if n.StartSeconds-l.LaneLengthSeconds > t {
			break
		}
		n.State = StateActive
		l.activeNotes[n.Lane] = append(l.activeNotes[n.Lane], n)
		l.nextNote++
	}
}

// RemoveNotesForTime evicts notes whose end time plus tolerance has
// passed, regardless of final state, and appends them to the played
// batch. Eviction pops from the head of each lane queue only, keeping
// the queue a FIFO over unresolved notes.
func (l *Level) RemoveNotesForTime(t float64, tolerance float64) {
	for lane := 0; lane < LaneCount; lane++ {
		notes := l.activeNotes[lane]
		for len(notes) > 0 && notes[0].EndSeconds+tolerance < t {
			l.playedNotes = append(l.playedNotes, notes[0])
			notes = notes[1:]
		}
		l.activeNotes[lane] = notes
	}
}

// ActiveNotes returns the activated, unresolved notes for a lane,
// earliest first.
func (l *Level) ActiveNotes(lane int) []*Note {
	return l.activeNotes[lane]
}

// PlayedNotes returns the notes resolved since the last ClearPlayedNotes.
func (l *Level) PlayedNotes() []*Note {
	return l.playedNotes
}

func (l *Level) ClearPlayedNotes() {
	l.playedNotes = l.playedNotes[:0]
}
