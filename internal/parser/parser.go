package parser

import "git.lost.host/meutraa/eotk/internal/game"

// Entry is one line of the level list: the level file name and the name
// shown in the select menu. The file name doubles as the high score key.
type Entry struct {
	FileName    string
	DisplayName string
}

type Parser interface {
	ParseLevelList(file string) ([]Entry, error)
	ParseLevel(file string) (*game.Level, error)
}
