package score

// Tracker accumulates one play session and keeps the persistent
// per-level high score table.
type Tracker interface {
	Init() error
	Deinit()

	// Session counters
	Reset()
	RegisterHit(points float64)
	RegisterMiss()
	Score() int
	Combo() uint
	MaxCombo() uint
	Missed() uint
	Played() uint
	Accuracy() float64
	IsFullCombo() bool

	// High score table, keyed by level file name
	HighScore(level string) int
	IsHighScore(level string) bool
	SetHighScore(level string)
	LoadHighScores() error
	SaveHighScores() error
}
