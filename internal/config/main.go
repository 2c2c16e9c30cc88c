package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

// Sound effect file names, resolved against Settings.EffectsDir.
const (
	MenuNavigateSound = "menu_navigate.wav"
	MenuConfirmSound  = "menu_confirm.wav"
	MenuBackSound     = "menu_back.wav"
	ComboBreakSound   = "combo_break.wav"
)

var (
	dataDir       = kingpin.Flag("data", "Game data directory").Default("gamedata").Short('d').String()
	levelList     = kingpin.Flag("level-list", "Level list file, relative to the data directory").Default("level_list.txt").String()
	scoresPath    = kingpin.Flag("scores", "High score database path").Default("scores.db").String()
	device        = kingpin.Flag("device", "Input device to read key events from, e.g. /dev/input/event3. Uses terminal input if unset").String()
	frameRate     = kingpin.Flag("frame-rate", "Game update rate").Default("60.0").Short('R').Float64()
	laneKeys      = kingpin.Flag("keys", "Lane keys, one per lane").Default("dfjk").Short('k').String()
	earlyPress    = kingpin.Flag("early-press", "Seconds a press may precede a note start").Default("0.1").Float64()
	latePress     = kingpin.Flag("late-press", "Seconds a press may follow a note start").Default("0.1").Float64()
	earlyRelease  = kingpin.Flag("early-release", "Seconds a release may precede a note end").Default("0.1").Float64()
	maxMiss       = kingpin.Flag("miss-distance", "Forgiveness band beyond the early press window").Default("0.05").Float64()
	comboLoss     = kingpin.Flag("combo-loss", "Combo size whose loss plays the break sound").Default("10").Uint()
	errorDuration = kingpin.Flag("error-duration", "Seconds a lane mistake stays highlighted").Default("0.5").Float64()
)

// Settings is the immutable configuration handed to the level model,
// score tracker and game manager constructors.
type Settings struct {
	DataDir    string
	LevelList  string // Relative to DataDir
	LevelsDir  string // Relative to DataDir
	SongsDir   string // Relative to DataDir
	EffectsDir string // Relative to DataDir
	ScoresPath string
	Device     string

	FrameRate float64
	LaneKeys  []rune

	EarlyPressTolerance   float64
	LatePressTolerance    float64
	EarlyReleaseTolerance float64
	MaxMissDistance       float64

	BigComboLossThreshold    uint
	NoteErrorDisplayDuration float64
}

// Load parses the command line once and freezes it into a Settings.
func Load() *Settings {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	s := Default()
	s.DataDir = *dataDir
	s.LevelList = *levelList
	s.ScoresPath = *scoresPath
	s.Device = *device
	s.FrameRate = *frameRate
	s.LaneKeys = []rune(*laneKeys)
	s.EarlyPressTolerance = *earlyPress
	s.LatePressTolerance = *latePress
	s.EarlyReleaseTolerance = *earlyRelease
	s.MaxMissDistance = *maxMiss
	s.BigComboLossThreshold = *comboLoss
	s.NoteErrorDisplayDuration = *errorDuration
	return s
}

// Default returns the built-in settings without touching the command
// line, so tests can construct a manager directly.
func Default() *Settings {
	return &Settings{
		DataDir:                  "gamedata",
		LevelList:                "level_list.txt",
		LevelsDir:                "levels",
		SongsDir:                 "songs",
		EffectsDir:               "effects",
		ScoresPath:               "scores.db",
		FrameRate:                60.0,
		LaneKeys:                 []rune("dfjk"),
		EarlyPressTolerance:      0.1,
		LatePressTolerance:       0.1,
		EarlyReleaseTolerance:    0.1,
		MaxMissDistance:          0.05,
		BigComboLossThreshold:    10,
		NoteErrorDisplayDuration: 0.5,
	}
}
