package render

import "git.lost.host/meutraa/eotk/internal/game"

// Renderer is the presentation surface the game manager draws into.
// Drawing is fire and forget; nothing is ever read back. Calls batch
// into a frame that is written out by Refresh.
type Renderer interface {
	Init() error
	Deinit() error

	ClearConsole()
	ClearUI()
	ClearUIBottom()
	ClearNotesArea()
	Refresh()

	// Level select
	DrawUIBorder()
	DrawSelectUI(names []string)
	UpdateSelectUI(index int, highScore int)
	DrawConfirmedUI(index int)

	// Level play
	DrawUI(songName string, songLength int)
	DrawNote(n *game.Note, laneLengthSeconds float64, t float64)
	DrawBottomBar(held []bool, mistakes []bool)
	UpdateUI(elapsed int, score int, combo uint, fullCombo bool, missed uint, highScore int, newHighScore bool)

	// Level results
	DrawResults(score int, highScore bool, accuracy float64, hit uint, total uint, maxCombo uint, missed uint)
	UpdateResults(showPrompt bool)
}
