package score

import (
	"database/sql"
	"math"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

type DefaultTracker struct {
	Path string // High score database path

	db *sql.DB

	points     float64
	combo      uint
	maxCombo   uint
	missed     uint
	played     uint
	highScores map[string]int
}

func (s *DefaultTracker) Init() error {
	db, err := sql.Open("sqlite3", s.Path)
	if nil != err {
		return errors.Wrap(err, "unable to open score database")
	}

	initStatement := `
	create table if not exists highscores
	  (
		  level text not null primary key,
		  score integer not null
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create score table")
	}

	s.db = db
	s.highScores = map[string]int{}
	return nil
}

func (s *DefaultTracker) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultTracker) Reset() {
	s.points = 0
	s.combo = 0
	s.maxCombo = 0
	s.missed = 0
	s.played = 0
}

func (s *DefaultTracker) RegisterHit(points float64) {
	s.points += points
	s.played++
	s.combo++
	if s.combo > s.maxCombo {
		s.maxCombo = s.combo
	}
}

func (s *DefaultTracker) RegisterMiss() {
	s.played++
	s.missed++
	s.combo = 0
}

func (s *DefaultTracker) Score() int {
	return int(math.Round(s.points))
}

func (s *DefaultTracker) Combo() uint    { return s.combo }
func (s *DefaultTracker) MaxCombo() uint { return s.maxCombo }
func (s *DefaultTracker) Missed() uint   { return s.missed }
func (s *DefaultTracker) Played() uint   { return s.played }

func (s *DefaultTracker) Accuracy() float64 {
	if s.played == 0 {
		return 0
	}
	return float64(s.played-s.missed) / float64(s.played)
}

func (s *DefaultTracker) IsFullCombo() bool {
	return s.played > 0 && s.missed == 0
}

// HighScore returns the stored best for a level, 0 when never played.
func (s *DefaultTracker) HighScore(level string) int {
	return s.highScores[level]
}

// IsHighScore reports whether the running score strictly beats the
// stored best. Equalling a high score is not setting one.
func (s *DefaultTracker) IsHighScore(level string) bool {
	return s.Score() > s.highScores[level]
}

func (s *DefaultTracker) SetHighScore(level string) {
	s.highScores[level] = s.Score()
}

func (s *DefaultTracker) LoadHighScores() error {
	rows, err := s.db.Query("select level, score from highscores")
	if nil != err {
		return errors.Wrap(err, "unable to load high scores")
	}
	defer rows.Close()

	s.highScores = map[string]int{}
	for rows.Next() {
		var level string
		var best int
		if err := rows.Scan(&level, &best); nil != err {
			return errors.Wrap(err, "unable to scan high score row")
		}
		s.highScores[level] = best
	}
	return rows.Err()
}

// SaveHighScores rewrites the whole table from the in-memory mapping.
func (s *DefaultTracker) SaveHighScores() error {
	tx, err := s.db.Begin()
	if nil != err {
		return errors.Wrap(err, "unable to begin score save")
	}
	if _, err := tx.Exec("delete from highscores"); nil != err {
		tx.Rollback()
		return errors.Wrap(err, "unable to clear score table")
	}
	for level, best := range s.highScores {
		if _, err := tx.Exec("insert into highscores(level, score) values(?, ?)", level, best); nil != err {
			tx.Rollback()
			return errors.Wrap(err, "unable to save high score")
		}
	}
	return errors.Wrap(tx.Commit(), "unable to commit score save")
}
