package testdata

import "git.lost.host/meutraa/eotk/internal/game"

// GetLevel builds a small level in memory: one short note per lane and
// a hold on lane 0, all within a four second song.
func GetLevel() *game.Level {
	return &game.Level{
		SongName:          "test song",
		AudioFileName:     "test.wav",
		LengthSeconds:     4.0,
		LaneLengthSeconds: 1.0,
		Notes: []*game.Note{
			{Lane: 0, StartSeconds: 1.0, EndSeconds: 1.1},
			{Lane: 1, StartSeconds: 1.5, EndSeconds: 1.6},
			{Lane: 2, StartSeconds: 2.0, EndSeconds: 2.1},
			{Lane: 3, StartSeconds: 2.5, EndSeconds: 2.6},
			{Lane: 0, StartSeconds: 3.0, EndSeconds: 3.8},
		},
	}
}
